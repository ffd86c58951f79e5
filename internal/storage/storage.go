package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"

	"github.com/carson-networks/autotrack-server/internal/config"
	"github.com/carson-networks/autotrack-server/internal/storage/sqlconfig"
)

const (
	maxOpenConns    = 10
	connMaxIdleTime = 5 * time.Minute
	defaultDBUser   = "postgres"
)

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	connStr, err := ConnectionString(env.DatabaseURL, env.DatabaseKey)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(db),
	}, nil
}

// ConnectionString puts the database key into the endpoint URL as the password.
func ConnectionString(endpoint, key string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("parse DATABASE_URL: unsupported scheme %q", u.Scheme)
	}

	username := defaultDBUser
	if u.User != nil && u.User.Username() != "" {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, key)

	return u.String(), nil
}

// Ping checks the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
