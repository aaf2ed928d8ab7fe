package models

import "time"

// Customer is a convenience record used to pre-fill quote client fields.
// There is no foreign key between quotes and customers; matching is a
// best-effort lookup on (name, email, phone) used only by the edit form.
type Customer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null;index" json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
