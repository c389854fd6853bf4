package infrastructure

import (
	"context"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewCatalogPool connects to the template catalog database. With no DSN
// configured it returns a nil pool; the repository then serves the
// built-in catalog.
func NewCatalogPool(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := os.Getenv("TEMPLATES_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
