package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental links one client to one property for a date range. It is created
// active by the rent workflow and ends when closed explicitly or swept after
// its end date.
type Rental struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	ClientID         uint            `gorm:"not null;index" json:"client_id"`
	Client           *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	PropertyID       uint            `gorm:"not null;index" json:"property_id"`
	Property         *Property       `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	StartDate        Date            `gorm:"type:text;not null" json:"start_date"`
	EndDate          Date            `gorm:"type:text;not null" json:"end_date"`
	DurationMonths   int             `gorm:"not null" json:"duration_months"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentMethod    PaymentMethod   `gorm:"type:text;not null" json:"payment_method"`
	PaymentFrequency Frequency       `gorm:"type:text;not null" json:"payment_frequency"`
	NextDueDate      Date            `gorm:"type:text;not null;index" json:"next_due_date"`
	Status           RentalStatus    `gorm:"type:text;not null;index" json:"status"`
	CreatedDate      time.Time       `gorm:"autoCreateTime" json:"created_date"`
}

func (r *Rental) Validate() error {
	switch {
	case r.ClientID == 0:
		return invalid("client_id", "is required")
	case r.PropertyID == 0:
		return invalid("property_id", "is required")
	case r.StartDate.IsZero():
		return invalid("start_date", "is required")
	case !r.EndDate.After(r.StartDate):
		return invalid("end_date", "must be after start_date")
	case r.DurationMonths <= 0:
		return invalid("duration_months", "must be at least 1")
	case r.TotalAmount.IsNegative():
		return invalid("total_amount", "must be at least 0")
	case !r.PaymentMethod.Valid():
		return invalid("payment_method", "must be one of "+joinValues(PaymentMethods()))
	case !r.PaymentFrequency.Valid():
		return invalid("payment_frequency", "must be one of "+joinValues(Frequencies()))
	case r.NextDueDate.IsZero():
		return invalid("next_due_date", "is required")
	case !r.Status.Valid():
		return invalid("status", "must be active or ended")
	}
	return nil
}

func (r *Rental) IsActive() bool { return r.Status == RentalActive }

// RemainingDays counts the days from asOf to the end date; negative once the rental has run out.
func (r *Rental) RemainingDays(asOf Date) int {
	return daysBetween(asOf, r.EndDate)
}

// DaysUntilDue counts the days from asOf to the next due date.
func (r *Rental) DaysUntilDue(asOf Date) int {
	return daysBetween(asOf, r.NextDueDate)
}

func daysBetween(from, to Date) int {
	return int(to.Time().Sub(from.Time()).Hours() / 24)
}
