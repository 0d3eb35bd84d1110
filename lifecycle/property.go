package lifecycle

import (
	"context"
	"errors"

	"github.com/beesaferoot/property-leasing/models"
)

var errNoPictureStore = errors.New("no picture store configured")

// DeleteResult reports a completed property deletion. PictureErr is set when the
// picture could not be removed; the property row is deleted regardless.
type DeleteResult struct {
	PropertyID uint
	PictureErr error
}

// AddProperty stores a new property built with models.NewProperty.
func (c *Controller) AddProperty(ctx context.Context, p *models.Property) (uint, error) {
	if p.ID != 0 {
		return 0, &models.ValidationError{Field: "id", Reason: "must be empty for a new property"}
	}
	id, err := c.gateway.SaveProperty(ctx, p)
	if err != nil {
		return 0, err
	}
	c.log.Info("property added", "property_id", id, "category", p.Category)
	return id, nil
}

// AttachPicture stores the picture at sourcePath and records its location on
// the property. A failure leaves the property row as it was.
func (c *Controller) AttachPicture(ctx context.Context, propertyID uint, sourcePath string) (string, error) {
	if c.pictures == nil {
		return "", errNoPictureStore
	}
	p, err := c.gateway.GetProperty(ctx, propertyID)
	if err != nil {
		return "", err
	}
	stored, err := c.pictures.Store(ctx, propertyID, sourcePath)
	if err != nil {
		return "", err
	}
	p.PicturePath = &stored
	if _, err := c.gateway.SaveProperty(ctx, p); err != nil {
		return "", err
	}
	c.log.Info("picture attached", "property_id", propertyID, "path", stored)
	return stored, nil
}

// PicturePath returns the recorded picture of a property, falling back to a
// lookup by file name when none is recorded.
func (c *Controller) PicturePath(ctx context.Context, propertyID uint) (string, bool, error) {
	p, err := c.gateway.GetProperty(ctx, propertyID)
	if err != nil {
		return "", false, err
	}
	if p.PicturePath != nil && *p.PicturePath != "" {
		return *p.PicturePath, true, nil
	}
	if c.pictures == nil {
		return "", false, nil
	}
	return c.pictures.Lookup(ctx, propertyID)
}

// DeleteProperty removes a property that is not actively rented, along with its
// payments, ended rentals and picture.
func (c *Controller) DeleteProperty(ctx context.Context, id uint) (*DeleteResult, error) {
	if _, err := c.gateway.GetProperty(ctx, id); err != nil {
		return nil, err
	}
	active, err := c.gateway.HasActiveRental(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, &models.ConflictError{Entity: "property", ID: id, Reason: "cannot delete a property that is currently rented"}
	}

	res := &DeleteResult{PropertyID: id}
	if c.pictures != nil {
		if err := c.pictures.Remove(ctx, id); err != nil {
			res.PictureErr = err
			c.log.Warn("failed to remove property picture", "property_id", id, "err", err)
		}
	}

	if err := c.gateway.DeleteProperty(ctx, id); err != nil {
		return nil, err
	}
	c.log.Info("property deleted", "property_id", id)
	return res, nil
}
