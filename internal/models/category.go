package models

import "time"

// Category groups food items for menu organization and print layout.
// Deleting a category does not cascade; food items keep their CategoryID
// and resolve to "unknown category" at read time.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
