package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(20)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

// OpenWithRetry blocks until the database answers a ping, retrying with a
// fixed delay. maxRetries of zero retries without limit; a positive cap
// that is exhausted returns the last error (callers treat this as fatal).
func OpenWithRetry(ctx context.Context, databaseURL string, retryDelay time.Duration, maxRetries int) (*sql.DB, error) {
	var lastErr error
	for attempt := 1; ; attempt++ {
		db, err := Open(ctx, databaseURL)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("store: database not ready (attempt %d): %v", attempt, err)

		if maxRetries > 0 && attempt >= maxRetries {
			return nil, fmt.Errorf("database unavailable after %d attempts: %w", attempt, lastErr)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("database wait cancelled: %w", ctx.Err())
		case <-time.After(retryDelay):
		}
	}
}
