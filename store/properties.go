package store

import (
	"context"
	"fmt"

	"github.com/beesaferoot/property-leasing/models"
)

// PropertyOrder selects the sort key of QueryProperties.
type PropertyOrder int

const (
	// OrderByID lists properties in insertion order.
	OrderByID PropertyOrder = iota
	// OrderByCategory groups properties by category, then kind.
	OrderByCategory
)

type PropertyFilter struct {
	Category      models.Category
	AvailableOnly bool
	OrderBy       PropertyOrder
}

func (s *Store) SaveProperty(ctx context.Context, p *models.Property) (uint, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := s.save(ctx, "property", &models.Property{}, p, p.ID); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *Store) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	var p models.Property
	if err := s.first(ctx, "property", &p, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) QueryProperties(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	db := s.conn(ctx)
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.AvailableOnly {
		db = db.Where("is_available = ?", true)
	}
	switch filter.OrderBy {
	case OrderByCategory:
		db = db.Order("category, kind, id")
	default:
		db = db.Order("id")
	}

	var props []models.Property
	if err := db.Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

func (s *Store) HasActiveRental(ctx context.Context, propertyID uint) (bool, error) {
	var n int64
	err := s.conn(ctx).Model(&models.Rental{}).
		Where("property_id = ? AND status = ?", propertyID, models.RentalActive).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteProperty removes a property that is not actively rented, together with its
// payments and its ended rentals.
func (s *Store) DeleteProperty(ctx context.Context, id uint) error {
	return s.InTx(ctx, func(g Gateway) error {
		tx := g.(*Store)
		if err := tx.requireRow(ctx, "property", &models.Property{}, id); err != nil {
			return err
		}
		active, err := tx.HasActiveRental(ctx, id)
		if err != nil {
			return err
		}
		if active {
			return &models.ConflictError{Entity: "property", ID: id, Reason: "cannot delete a property that is currently rented"}
		}

		db := tx.conn(ctx)
		if err := db.Where("property_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return fmt.Errorf("failed to delete payments of property %d: %w", id, err)
		}
		if err := db.Where("property_id = ?", id).Delete(&models.Rental{}).Error; err != nil {
			return fmt.Errorf("failed to delete ended rentals of property %d: %w", id, err)
		}
		if err := db.Delete(&models.Property{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete property %d: %w", id, err)
		}
		return nil
	})
}
