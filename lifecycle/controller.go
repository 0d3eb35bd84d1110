// Package lifecycle drives the property state machine
// (available, rented, available again) and the payment ledger. Every state
// transition runs in one gateway transaction.
package lifecycle

import (
	"log/slog"
	"time"

	"github.com/beesaferoot/property-leasing/models"
	"github.com/beesaferoot/property-leasing/picture"
	"github.com/beesaferoot/property-leasing/store"
)

type Controller struct {
	gateway  store.Gateway
	pictures picture.Store
	log      *slog.Logger
	now      func() time.Time
}

type Option func(*Controller)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New builds a controller. pictures may be nil, in which case picture
// operations fail and property deletion skips picture removal.
func New(gateway store.Gateway, pictures picture.Store, opts ...Option) *Controller {
	c := &Controller{
		gateway:  gateway,
		pictures: pictures,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Today is the current calendar date according to the controller's clock.
func (c *Controller) Today() models.Date {
	return models.DateOf(c.now())
}
