package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-leasing/internal/config"
	"github.com/beesaferoot/property-leasing/lifecycle"
	"github.com/beesaferoot/property-leasing/models"
	"github.com/beesaferoot/property-leasing/picture"
	"github.com/beesaferoot/property-leasing/store"
)

// app is what every sub-command works with: the configuration, the opened
// store and a controller over it.
type app struct {
	cfg   config.Config
	store *store.Store
	ctrl  *lifecycle.Controller
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(store.Options{
		Driver: store.Driver(cfg.DatabaseDriver),
		DSN:    cfg.DatabaseURL,
		Debug:  cfg.Debug(),
	})
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}

	pics, err := newPictureStore(cmd.Context(), cfg)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return &app{
		cfg:   cfg,
		store: s,
		ctrl:  lifecycle.New(s, pics, lifecycle.WithLogger(logger)),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func newPictureStore(ctx context.Context, cfg config.Config) (picture.Store, error) {
	if cfg.PictureBackend == "s3" {
		return picture.NewS3(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.AWSRegion)
	}
	return picture.NewDir(cfg.PicturesDir), nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// withApp opens the application for the duration of fn.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func parseID(kind, s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, &models.ValidationError{Field: kind + "_id", Reason: fmt.Sprintf("%q is not a valid id", s)}
	}
	return uint(id), nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &models.ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a number", s)}
	}
	return amount, nil
}

// parseOptionalDate returns the zero Date for an empty flag value.
func parseOptionalDate(s string) (models.Date, error) {
	if strings.TrimSpace(s) == "" {
		return models.Date{}, nil
	}
	return models.ParseDate(s)
}

func orToday(a *app, s string) (models.Date, error) {
	d, err := parseOptionalDate(s)
	if err != nil || !d.IsZero() {
		return d, err
	}
	return a.ctrl.Today(), nil
}
