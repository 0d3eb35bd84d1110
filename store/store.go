// Package store is the persistence gateway of the leasing engine. It maps the
// entity model onto four relations through GORM and enforces the referential
// rules the lifecycle depends on.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/property-leasing/models"
)

type Driver string

const (
	SQLite   Driver = "sqlite"
	Postgres Driver = "postgres"
)

type Options struct {
	Driver Driver
	DSN    string
	Debug  bool
}

// Store implements Gateway on a *gorm.DB. Inside InTx the db is the open transaction.
type Store struct {
	db *gorm.DB
}

var _ Gateway = (*Store)(nil)

func Open(opts Options) (*Store, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("database DSN is empty")
	}

	var dialector gorm.Dialector
	switch opts.Driver {
	case SQLite, "":
		dialector = sqlite.Open(withForeignKeys(opts.DSN))
	case Postgres:
		dialector = postgres.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	level := logger.Silent
	if opts.Debug {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if opts.Driver != Postgres {
		// one connection: an in-memory database lives and dies with it, and sqlite
		// serialises writers anyway
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return &Store{db: db}, nil
}

// New wraps an already opened connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}

// Migrate creates any missing table or column of the registered models. Existing
// data is never altered.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(models.ModelTypeRegistry...); err != nil {
		return fmt.Errorf("failed to create leasing tables: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InTx runs fn inside a single transaction. Any error returned by fn rolls back
// every write made through the Gateway it receives.
func (s *Store) InTx(ctx context.Context, fn func(Gateway) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// exists reports whether a row of model's table has the given id.
func (s *Store) exists(ctx context.Context, model any, id uint) (bool, error) {
	var n int64
	if err := s.conn(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) requireRow(ctx context.Context, entity string, model any, id uint) error {
	ok, err := s.exists(ctx, model, id)
	if err != nil {
		return fmt.Errorf("failed to look up %s %d: %w", entity, id, err)
	}
	if !ok {
		return &models.ReferenceError{Entity: entity, ID: id}
	}
	return nil
}

// save inserts value when id is zero and otherwise rewrites every column of the existing row.
func (s *Store) save(ctx context.Context, entity string, model, value any, id uint) error {
	db := s.conn(ctx).Omit(clause.Associations)
	if id == 0 {
		if err := db.Create(value).Error; err != nil {
			return fmt.Errorf("failed to insert %s: %w", entity, err)
		}
		return nil
	}
	if err := s.requireRow(ctx, entity, model, id); err != nil {
		return err
	}
	if err := db.Save(value).Error; err != nil {
		return fmt.Errorf("failed to update %s %d: %w", entity, id, err)
	}
	return nil
}

func (s *Store) first(ctx context.Context, entity string, dest any, id uint, preloads ...string) error {
	db := s.conn(ctx)
	for _, p := range preloads {
		db = db.Preload(p)
	}
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ReferenceError{Entity: entity, ID: id}
	}
	if err != nil {
		return fmt.Errorf("failed to load %s %d: %w", entity, id, err)
	}
	return nil
}
