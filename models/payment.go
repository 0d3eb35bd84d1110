package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is an entry of the payments ledger. It is independent of rental rows:
// recording one never changes a rental's own next due date.
type Payment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Reference  string          `gorm:"type:text;uniqueIndex" json:"reference"`
	ClientID   uint            `gorm:"not null;index" json:"client_id"`
	Client     *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	PropertyID *uint           `gorm:"index" json:"property_id,omitempty"`
	Property   *Property       `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaidOn     Date            `gorm:"type:text;not null" json:"paid_on"`
	Frequency  Frequency       `gorm:"type:text;not null" json:"frequency"`
	NextDue    Date            `gorm:"type:text;index" json:"next_due"`
	Notes      *string         `json:"notes,omitempty"`
}

func (p *Payment) Validate() error {
	switch {
	case p.ClientID == 0:
		return invalid("client_id", "is required")
	case !p.Amount.IsPositive():
		return invalid("amount", "must be greater than 0")
	case p.PaidOn.IsZero():
		return invalid("paid_on", "is required")
	case !p.Frequency.Valid():
		return invalid("frequency", "must be one of "+joinValues(Frequencies()))
	}
	return nil
}

// BeforeCreate assigns the receipt reference.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Reference == "" {
		p.Reference = uuid.NewString()
	}
	return nil
}
