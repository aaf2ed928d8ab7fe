package models

import "time"

// Vendor supplies pricing for food items. A food item may reference a
// deleted vendor; such lines resolve to "Unknown Vendor" for display,
// while totals keep using the price pair stored on the item.
type Vendor struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
}
