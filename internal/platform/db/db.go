package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open dials a Postgres pool for the seeding tool. The quote server
// itself runs on embedded SQLite and never goes through here.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("db.Open: parse database url: %w", err)
	}

	pool.SetMaxOpenConns(8)
	pool.SetMaxIdleConns(4)
	pool.SetConnMaxLifetime(30 * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("db.Open: reach postgres: %w", err)
	}

	return pool, nil
}
