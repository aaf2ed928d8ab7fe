package store

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/biryaniking52/catering-app/internal/models"
)

func (s *Store) Quotes() ([]models.Quote, error) {
	var out []models.Quote
	err := s.db.Preload("Items").Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetQuote(id uint) (*models.Quote, error) {
	var q models.Quote
	if err := s.db.Preload("Items").First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// AddQuote persists a new quote with its line items in one transaction and
// assigns it a reference code. The caller sets Status; an empty one falls
// back to draft.
func (s *Store) AddQuote(q models.Quote) (models.Quote, error) {
	if q.Reference == "" {
		q.Reference = models.NewReference()
	}
	if q.Status == "" {
		q.Status = models.StatusDraft
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&q).Error
	})
	return q, err
}

// UpdateQuote merges partial field updates and, when items is non-nil,
// replaces the full line-item set. UpdatedAt is always refreshed, even when
// the update map is empty: any touch of a quote counts as a modification.
func (s *Store) UpdateQuote(id uint, updates map[string]any, items []models.QuoteItem) (*models.Quote, error) {
	var q models.Quote
	if err := s.db.First(&q, id).Error; err != nil {
		return nil, err
	}
	if updates == nil {
		updates = map[string]any{}
	}
	// Map-based Updates bypasses gorm's field serializer; the JSON column
	// has to be marshalled here or the driver rejects the map value.
	if misc, ok := updates["miscellaneous_expenses"].(models.MiscellaneousExpenses); ok {
		raw, err := json.Marshal(misc)
		if err != nil {
			return nil, err
		}
		updates["miscellaneous_expenses"] = string(raw)
	}
	updates["updated_at"] = time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&q).Updates(updates).Error; err != nil {
			return err
		}
		if items != nil {
			if err := tx.Where("quote_id = ?", id).Delete(&models.QuoteItem{}).Error; err != nil {
				return err
			}
			for i := range items {
				items[i].ID = 0
				items[i].QuoteID = id
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetQuote(id)
}

// DeleteQuote is the administrative delete; the catering workflow itself
// never removes quotes.
func (s *Store) DeleteQuote(id uint) (bool, error) {
	var removed bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Quote{}, id)
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		return nil
	})
	return removed, err
}
