package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Quote statuses. The workflow is forward-only: draft/pending/rejected are
// editable, approved quotes move to in-progress and then completed.
const (
	StatusDraft      = "draft"
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Quote is a catering price quote moving through the approval workflow.
// GST and Discount are percentages (0-100); nil means "not set" and the
// calculator treats it as 0.
type Quote struct {
	ID                    uint                  `gorm:"primaryKey" json:"id"`
	Reference             string                `gorm:"size:40;uniqueIndex" json:"reference"`
	ClientName            string                `gorm:"not null;index" json:"clientName"`
	ClientEmail           string                `json:"clientEmail"`
	ClientPhone           string                `json:"clientPhone"`
	EventDate             string                `json:"eventDate"`
	EventType             string                `json:"eventType"`
	VenueAddress          string                `json:"venueAddress"`
	GuestCount            int                   `json:"guestCount"`
	Items                 []QuoteItem           `gorm:"foreignKey:QuoteID" json:"items"`
	Status                string                `gorm:"not null;index;default:'draft'" json:"status"`
	Notes                 string                `json:"notes"`
	GST                   *float64              `gorm:"type:decimal(5,2)" json:"gst,omitempty"`
	Discount              *float64              `gorm:"type:decimal(5,2)" json:"discount,omitempty"`
	MiscellaneousExpenses MiscellaneousExpenses `gorm:"serializer:json" json:"miscellaneousExpenses,omitempty"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
	ApprovedAt            *time.Time            `json:"approvedAt,omitempty"`
	ApprovedBy            string                `json:"approvedBy,omitempty"`
}

// NewReference generates an opaque, unique quote reference for printing and
// lookups, e.g. "Q-9F2C4B7A". Row ids stay internal.
func NewReference() string {
	return "Q-" + strings.ToUpper(uuid.NewString()[:8])
}

// QuoteItem selects a food item from one vendor. Selection is keyed by food
// item: a quote references a given FoodItemID at most once, so changing the
// vendor for an item replaces the line rather than adding one.
type QuoteItem struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	QuoteID    uint `gorm:"not null;index:idx_quote_food,unique,priority:1" json:"-"`
	FoodItemID uint `gorm:"not null;index:idx_quote_food,unique,priority:2" json:"foodItemId"`
	VendorID   uint `gorm:"not null" json:"vendorId"`
	Quantity   int  `gorm:"not null" json:"quantity"`
}
