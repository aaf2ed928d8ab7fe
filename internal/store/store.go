// Package store is the authoritative collection for every entity type.
// It is constructed explicitly and injected into handlers and the lifecycle
// service; nothing in the application touches ambient database state.
//
// Contract notes shared by all entities:
//   - List methods return fresh slices loaded from the database, so callers
//     can never mutate store internals through a returned value.
//   - Update methods merge a partial field set onto the existing record and
//     report a missing id with gorm.ErrRecordNotFound rather than failing
//     hard; callers decide how to surface it.
//   - Delete methods report whether a record was found and removed. Deletes
//     never cascade: categories, vendors and food items may be removed while
//     still referenced, and readers resolve the dangling reference instead.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/biryaniking52/catering-app/internal/models"
)

// ErrNotFound is the store's not-found sentinel, aliased so callers do not
// need to import gorm to test for it.
var ErrNotFound = gorm.ErrRecordNotFound

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle for health checks and migrations.
func (s *Store) DB() *gorm.DB { return s.db }

// --- Categories ---

func (s *Store) Categories() ([]models.Category, error) {
	var out []models.Category
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *Store) AddCategory(c models.Category) (models.Category, error) {
	err := s.db.Create(&c).Error
	return c, err
}

func (s *Store) UpdateCategory(id uint, updates map[string]any) (*models.Category, error) {
	return updateByID[models.Category](s.db, id, updates)
}

func (s *Store) DeleteCategory(id uint) (bool, error) {
	return deleteByID[models.Category](s.db, id)
}

// --- Vendors ---

func (s *Store) Vendors() ([]models.Vendor, error) {
	var out []models.Vendor
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *Store) AddVendor(v models.Vendor) (models.Vendor, error) {
	err := s.db.Create(&v).Error
	return v, err
}

func (s *Store) UpdateVendor(id uint, updates map[string]any) (*models.Vendor, error) {
	return updateByID[models.Vendor](s.db, id, updates)
}

func (s *Store) DeleteVendor(id uint) (bool, error) {
	return deleteByID[models.Vendor](s.db, id)
}

// --- Customers ---

func (s *Store) Customers() ([]models.Customer, error) {
	var out []models.Customer
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetCustomer(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) AddCustomer(c models.Customer) (models.Customer, error) {
	err := s.db.Create(&c).Error
	return c, err
}

func (s *Store) UpdateCustomer(id uint, updates map[string]any) (*models.Customer, error) {
	return updateByID[models.Customer](s.db, id, updates)
}

func (s *Store) DeleteCustomer(id uint) (bool, error) {
	return deleteByID[models.Customer](s.db, id)
}

// MatchCustomer preselects a customer for the quote edit form by exact
// (name, email, phone) match. Best effort only; there is no foreign key
// between quotes and customers.
func (s *Store) MatchCustomer(name, email, phone string) (*models.Customer, error) {
	var c models.Customer
	err := s.db.Where("name = ? AND email = ? AND phone = ?", name, email, phone).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// --- shared helpers ---

func updateByID[T any](db *gorm.DB, id uint, updates map[string]any) (*T, error) {
	var rec T
	if err := db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(&rec).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if err := db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func deleteByID[T any](db *gorm.DB, id uint) (bool, error) {
	var rec T
	res := db.Delete(&rec, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
