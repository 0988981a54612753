package repository

import (
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// NewDB opens a Postgres connection pool for the given URL. Managed
// providers require sslmode=require in the URL; auto-pausing providers add
// wake-up latency on the first query, which the operation timeout race in
// the service layer anticipates.
func NewDB(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed, continuing without verified connection", "error", err)
	}

	return db, nil
}
