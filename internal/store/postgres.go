package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/fleetsight/fleetsight/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock's pool
// satisfies it, which keeps the Postgres paths unit-testable.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	full_name     TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'owner',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = model.RoleOwner
	}
	user.CreatedAt = time.Now().UTC()

	var exists int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(1) FROM users WHERE email = $1`, user.Email,
	).Scan(&exists)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: check email")
	}
	if exists > 0 {
		return nil, ErrDuplicateEmail
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (id, email, full_name, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.FullName, user.PasswordHash, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert user")
	}
	return &user, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, full_name, password_hash, role, created_at FROM users WHERE email = $1`,
		email,
	)

	var u model.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, eris.Wrapf(err, "postgres: get user %s", email)
	}
	u.Role = model.Role(role)
	return &u, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, email, full_name, password_hash, role, created_at FROM users ORDER BY created_at`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list users")
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan user")
		}
		u.Role = model.Role(role)
		users = append(users, u)
	}
	return users, eris.Wrap(rows.Err(), "postgres: iterate users")
}
