package lifecycle

import (
	"context"
	"fmt"

	"github.com/beesaferoot/property-leasing/models"
	"github.com/beesaferoot/property-leasing/schedule"
	"github.com/beesaferoot/property-leasing/store"
)

// RentRequest describes a new rental. A Client with a non-zero ID is reused as
// stored; otherwise the client is created along with the rental.
type RentRequest struct {
	PropertyID       uint
	Client           *models.Client
	StartDate        models.Date
	EndDate          models.Date
	PaymentMethod    models.PaymentMethod
	PaymentFrequency models.Frequency
}

func (r RentRequest) validate() error {
	switch {
	case r.Client == nil:
		return &models.ValidationError{Field: "client", Reason: "is required"}
	case r.StartDate.IsZero():
		return &models.ValidationError{Field: "start_date", Reason: "is required"}
	case !r.EndDate.After(r.StartDate):
		return &models.ValidationError{Field: "end_date", Reason: "must be after start_date"}
	}
	return nil
}

// Rent creates an active rental and marks the property unavailable. Nothing is
// written unless every step succeeds.
func (c *Controller) Rent(ctx context.Context, req RentRequest) (*models.Rental, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	method, err := models.ParsePaymentMethod(string(req.PaymentMethod))
	if err != nil {
		return nil, err
	}
	freq, err := models.ParseFrequency(string(req.PaymentFrequency))
	if err != nil {
		return nil, err
	}
	months := schedule.DurationMonths(req.StartDate, req.EndDate)
	if months <= 0 {
		return nil, &models.ValidationError{Field: "duration_months", Reason: "must be at least 1"}
	}

	var rental *models.Rental
	err = c.gateway.InTx(ctx, func(g store.Gateway) error {
		property, err := g.GetProperty(ctx, req.PropertyID)
		if err != nil {
			return err
		}
		if !property.Available {
			return &models.ValidationError{
				Field:  "property",
				Reason: fmt.Sprintf("%s is not available for rent", property.DisplayName()),
			}
		}

		client, err := c.resolveClient(ctx, g, req.Client)
		if err != nil {
			return err
		}

		r := &models.Rental{
			ClientID:         client.ID,
			PropertyID:       property.ID,
			StartDate:        req.StartDate,
			EndDate:          req.EndDate,
			DurationMonths:   months,
			TotalAmount:      schedule.TotalAmount(property.RentAmount, property.RentPeriod, months),
			PaymentMethod:    method,
			PaymentFrequency: freq,
			NextDueDate:      schedule.NextDueDate(req.StartDate, freq),
			Status:           models.RentalActive,
		}
		if _, err := g.SaveRental(ctx, r); err != nil {
			return err
		}

		property.Available = false
		if _, err := g.SaveProperty(ctx, property); err != nil {
			return err
		}
		r.Client, r.Property = client, property
		rental = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("property rented",
		"rental_id", rental.ID,
		"property_id", rental.PropertyID,
		"client_id", rental.ClientID,
		"months", rental.DurationMonths,
		"total", rental.TotalAmount.StringFixed(2),
		"next_due", rental.NextDueDate.String())
	return rental, nil
}

func (c *Controller) resolveClient(ctx context.Context, g store.Gateway, in *models.Client) (*models.Client, error) {
	if in.ID != 0 {
		return g.GetClient(ctx, in.ID)
	}
	// the caller's value keeps a zero ID if the transaction rolls back
	client := *in
	client.Rentals = nil
	if _, err := g.SaveClient(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// EndRental closes an active rental and makes its property available again.
func (c *Controller) EndRental(ctx context.Context, rentalID uint) (*models.Rental, error) {
	var rental *models.Rental
	err := c.gateway.InTx(ctx, func(g store.Gateway) error {
		r, err := g.GetRental(ctx, rentalID)
		if err != nil {
			return err
		}
		if err := end(ctx, g, r); err != nil {
			return err
		}
		rental = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.log.Info("rental ended", "rental_id", rental.ID, "property_id", rental.PropertyID)
	return rental, nil
}

// EndExpired ends every active rental whose end date is before asOf and
// returns the rentals it closed.
func (c *Controller) EndExpired(ctx context.Context, asOf models.Date) ([]models.Rental, error) {
	var ended []models.Rental
	err := c.gateway.InTx(ctx, func(g store.Gateway) error {
		expired, err := g.QueryExpiredRentals(ctx, asOf)
		if err != nil {
			return err
		}
		for i := range expired {
			if err := end(ctx, g, &expired[i]); err != nil {
				return err
			}
		}
		ended = expired
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, r := range ended {
		c.log.Info("rental expired", "rental_id", r.ID, "property_id", r.PropertyID, "end_date", r.EndDate.String())
	}
	return ended, nil
}

func end(ctx context.Context, g store.Gateway, r *models.Rental) error {
	if !r.IsActive() {
		return &models.ConflictError{Entity: "rental", ID: r.ID, Reason: "rental has already ended"}
	}
	r.Status = models.RentalEnded
	if _, err := g.SaveRental(ctx, r); err != nil {
		return err
	}

	property, err := g.GetProperty(ctx, r.PropertyID)
	if err != nil {
		return err
	}
	property.Available = true
	if _, err := g.SaveProperty(ctx, property); err != nil {
		return err
	}
	r.Property = property
	return nil
}
