package database

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
	"github.com/jmoiron/sqlx"
)

// NewSQLXPostgresDB opens and pings a Postgres connection via the pgx
// stdlib driver.
func NewSQLXPostgresDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres database: %w", err)
	}
	return db, nil
}
