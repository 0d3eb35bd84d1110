package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/beesaferoot/property-leasing/models"
)

func (s *Store) SaveClient(ctx context.Context, c *models.Client) (uint, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := s.save(ctx, "client", &models.Client{}, c, c.ID); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *Store) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := s.first(ctx, "client", &c, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// QueryClients returns every client ordered by name, each with its rentals and
// the rented properties.
func (s *Store) QueryClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := s.conn(ctx).
		Preload("Rentals", func(db *gorm.DB) *gorm.DB { return db.Order("rentals.id") }).
		Preload("Rentals.Property").
		Order("name, id").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}
