package store

import (
	"context"

	"github.com/beesaferoot/property-leasing/models"
)

func (s *Store) SaveRental(ctx context.Context, r *models.Rental) (uint, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if err := s.requireRow(ctx, "client", &models.Client{}, r.ClientID); err != nil {
		return 0, err
	}
	if err := s.requireRow(ctx, "property", &models.Property{}, r.PropertyID); err != nil {
		return 0, err
	}
	if err := s.save(ctx, "rental", &models.Rental{}, r, r.ID); err != nil {
		return 0, err
	}
	return r.ID, nil
}

func (s *Store) GetRental(ctx context.Context, id uint) (*models.Rental, error) {
	var r models.Rental
	if err := s.first(ctx, "rental", &r, id, "Client", "Property"); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) QueryRentalsForClient(ctx context.Context, clientID uint) ([]models.Rental, error) {
	if err := s.requireRow(ctx, "client", &models.Client{}, clientID); err != nil {
		return nil, err
	}
	var rentals []models.Rental
	err := s.conn(ctx).Preload("Property").
		Where("client_id = ?", clientID).
		Order("id").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

// QueryActiveRentals lists the properties currently rented out, soonest ending first.
func (s *Store) QueryActiveRentals(ctx context.Context) ([]models.Rental, error) {
	return s.activeRentals(ctx, "end_date, id", "")
}

// QueryDueRentals lists active rentals whose next due date is on or before until.
func (s *Store) QueryDueRentals(ctx context.Context, until models.Date) ([]models.Rental, error) {
	return s.activeRentals(ctx, "next_due_date, id", "next_due_date <= ?", until.String())
}

// QueryExpiredRentals lists active rentals whose end date is before asOf.
func (s *Store) QueryExpiredRentals(ctx context.Context, asOf models.Date) ([]models.Rental, error) {
	return s.activeRentals(ctx, "end_date, id", "end_date < ?", asOf.String())
}

func (s *Store) activeRentals(ctx context.Context, order, cond string, args ...any) ([]models.Rental, error) {
	db := s.conn(ctx).Preload("Client").Preload("Property").
		Where("status = ?", models.RentalActive)
	if cond != "" {
		db = db.Where(cond, args...)
	}
	var rentals []models.Rental
	if err := db.Order(order).Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}
