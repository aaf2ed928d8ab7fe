package models

import "time"

// Diet types
const (
	DietVeg    = "veg"
	DietNonVeg = "non-veg"
)

// VendorPrice is one vendor's cost/retail pair for a food item. Cost and
// retail are independent non-negative amounts; retail below cost (negative
// margin) is allowed.
type VendorPrice struct {
	VendorID    uint    `json:"vendorId"`
	CostPrice   float64 `json:"costPrice"`
	RetailPrice float64 `json:"retailPrice"`
}

// FoodItem is a menu entry priced per vendor. Vendor prices are stored as a
// JSON column rather than a join table: they are read and replaced as a
// unit, never queried individually. An item needs at least one vendor price
// to be usable in a quote; that is enforced at create/edit time, not here.
type FoodItem struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"not null" json:"name"`
	Description  string        `json:"description"`
	CategoryID   uint          `gorm:"index" json:"categoryId"`
	Diet         string        `gorm:"not null;default:'veg'" json:"diet"`
	VendorPrices []VendorPrice `gorm:"serializer:json" json:"vendorPrices"`
	CreatedAt    time.Time     `json:"createdAt"`
}
