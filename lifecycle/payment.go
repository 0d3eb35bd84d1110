package lifecycle

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/beesaferoot/property-leasing/models"
	"github.com/beesaferoot/property-leasing/schedule"
)

// PaymentRequest is money received from a client. PropertyID is optional and
// a zero PaidOn means today.
type PaymentRequest struct {
	ClientID   uint
	PropertyID *uint
	Amount     decimal.Decimal
	PaidOn     models.Date
	Frequency  models.Frequency
	Notes      string
}

// RecordPayment appends an entry to the payments ledger with its next due date.
// Rental rows are left untouched.
func (c *Controller) RecordPayment(ctx context.Context, req PaymentRequest) (*models.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, &models.ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}
	freq, err := models.ParseFrequency(string(req.Frequency))
	if err != nil {
		return nil, err
	}
	paidOn := req.PaidOn
	if paidOn.IsZero() {
		paidOn = c.Today()
	}

	p := &models.Payment{
		ClientID:   req.ClientID,
		PropertyID: req.PropertyID,
		Amount:     req.Amount.Round(2),
		PaidOn:     paidOn,
		Frequency:  freq,
		NextDue:    schedule.NextDueDate(paidOn, freq),
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		p.Notes = &notes
	}
	if _, err := c.gateway.SavePayment(ctx, p); err != nil {
		return nil, err
	}

	c.log.Info("payment recorded",
		"payment_id", p.ID,
		"reference", p.Reference,
		"client_id", p.ClientID,
		"amount", p.Amount.StringFixed(2),
		"next_due", p.NextDue.String())
	return p, nil
}
