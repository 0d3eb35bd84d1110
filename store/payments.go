package store

import (
	"context"

	"github.com/beesaferoot/property-leasing/models"
)

func (s *Store) SavePayment(ctx context.Context, p *models.Payment) (uint, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := s.requireRow(ctx, "client", &models.Client{}, p.ClientID); err != nil {
		return 0, err
	}
	if p.PropertyID != nil {
		if err := s.requireRow(ctx, "property", &models.Property{}, *p.PropertyID); err != nil {
			return 0, err
		}
	}
	if err := s.save(ctx, "payment", &models.Payment{}, p, p.ID); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// QueryDuePayments lists ledger entries whose next due date is on or before asOf.
func (s *Store) QueryDuePayments(ctx context.Context, asOf models.Date) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.conn(ctx).Preload("Client").Preload("Property").
		Where("next_due <= ?", asOf.String()).
		Order("next_due, id").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
