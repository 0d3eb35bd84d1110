package store

import (
	"context"

	"github.com/beesaferoot/property-leasing/models"
)

// Gateway is the repository contract used by the lifecycle controller. Saves
// insert when the entity has no ID yet and update it otherwise; every query
// returns complete rows.
type Gateway interface {
	SaveClient(ctx context.Context, c *models.Client) (uint, error)
	SaveProperty(ctx context.Context, p *models.Property) (uint, error)
	SaveRental(ctx context.Context, r *models.Rental) (uint, error)
	SavePayment(ctx context.Context, p *models.Payment) (uint, error)

	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetProperty(ctx context.Context, id uint) (*models.Property, error)
	GetRental(ctx context.Context, id uint) (*models.Rental, error)

	QueryProperties(ctx context.Context, filter PropertyFilter) ([]models.Property, error)
	QueryClients(ctx context.Context) ([]models.Client, error)
	QueryRentalsForClient(ctx context.Context, clientID uint) ([]models.Rental, error)
	QueryActiveRentals(ctx context.Context) ([]models.Rental, error)
	QueryDueRentals(ctx context.Context, until models.Date) ([]models.Rental, error)
	QueryExpiredRentals(ctx context.Context, asOf models.Date) ([]models.Rental, error)
	QueryDuePayments(ctx context.Context, asOf models.Date) ([]models.Payment, error)

	HasActiveRental(ctx context.Context, propertyID uint) (bool, error)
	DeleteProperty(ctx context.Context, id uint) error

	InTx(ctx context.Context, fn func(Gateway) error) error
}
