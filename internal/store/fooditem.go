package store

import (
	"encoding/json"

	"github.com/biryaniking52/catering-app/internal/models"
)

func (s *Store) FoodItems() ([]models.FoodItem, error) {
	var out []models.FoodItem
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetFoodItem(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) AddFoodItem(item models.FoodItem) (models.FoodItem, error) {
	err := s.db.Create(&item).Error
	return item, err
}

// BulkAddFoodItems inserts a batch in one transaction, used by menu imports.
func (s *Store) BulkAddFoodItems(items []models.FoodItem) ([]models.FoodItem, error) {
	if len(items) == 0 {
		return items, nil
	}
	err := s.db.Create(&items).Error
	return items, err
}

func (s *Store) UpdateFoodItem(id uint, updates map[string]any) (*models.FoodItem, error) {
	// Map-based Updates bypasses gorm's field serializer; the JSON column
	// has to be marshalled here or the driver rejects the struct slice.
	if prices, ok := updates["vendor_prices"].([]models.VendorPrice); ok {
		raw, err := json.Marshal(prices)
		if err != nil {
			return nil, err
		}
		updates["vendor_prices"] = string(raw)
	}
	return updateByID[models.FoodItem](s.db, id, updates)
}

func (s *Store) DeleteFoodItem(id uint) (bool, error) {
	return deleteByID[models.FoodItem](s.db, id)
}
