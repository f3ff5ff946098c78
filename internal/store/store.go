// Package store persists dashboard user accounts behind a small interface
// with SQLite and Postgres backends.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/fleetsight/fleetsight/internal/config"
	"github.com/fleetsight/fleetsight/internal/model"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = eris.New("store: user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = eris.New("store: email already registered")
)

// Store defines the persistence interface for dashboard accounts.
type Store interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open constructs a Store from config.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return NewSQLite(cfg.Path)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
