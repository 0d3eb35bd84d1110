package lifecycle

import (
	"context"

	"github.com/beesaferoot/property-leasing/models"
	"github.com/beesaferoot/property-leasing/store"
)

func (c *Controller) Properties(ctx context.Context, filter store.PropertyFilter) ([]models.Property, error) {
	return c.gateway.QueryProperties(ctx, filter)
}

// Clients lists every client with its rentals and the rented properties.
func (c *Controller) Clients(ctx context.Context) ([]models.Client, error) {
	return c.gateway.QueryClients(ctx)
}

func (c *Controller) RentalsForClient(ctx context.Context, clientID uint) ([]models.Rental, error) {
	return c.gateway.QueryRentalsForClient(ctx, clientID)
}

func (c *Controller) ActiveRentals(ctx context.Context) ([]models.Rental, error) {
	return c.gateway.QueryActiveRentals(ctx)
}

// DueRentals lists active rentals falling due within windowDays of asOf,
// overdue ones included.
func (c *Controller) DueRentals(ctx context.Context, asOf models.Date, windowDays int) ([]models.Rental, error) {
	return c.gateway.QueryDueRentals(ctx, asOf.AddDays(windowDays))
}

// DuePayments lists ledger entries whose next payment is due on or before asOf.
func (c *Controller) DuePayments(ctx context.Context, asOf models.Date) ([]models.Payment, error) {
	return c.gateway.QueryDuePayments(ctx, asOf)
}
