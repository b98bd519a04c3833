package store

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS site_settings (
		id INTEGER PRIMARY KEY,
		content JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS smtp_settings (
		id INTEGER PRIMARY KEY,
		settings JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		excerpt TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'published',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trainings (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		full_content TEXT NOT NULL DEFAULT '',
		duration TEXT NOT NULL DEFAULT '',
		level TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'upcoming',
		image TEXT NOT NULL DEFAULT '',
		syllabus JSONB NOT NULL DEFAULT '[]'::jsonb,
		presentation JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS form_submissions (
		id BIGSERIAL PRIMARY KEY,
		type TEXT NOT NULL DEFAULT '',
		form_data JSONB NOT NULL DEFAULT '{}'::jsonb,
		status TEXT NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE trainings ADD COLUMN IF NOT EXISTS syllabus JSONB NOT NULL DEFAULT '[]'::jsonb`,
	`ALTER TABLE trainings ADD COLUMN IF NOT EXISTS full_content TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE trainings ADD COLUMN IF NOT EXISTS level TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE trainings ADD COLUMN IF NOT EXISTS presentation JSONB NOT NULL DEFAULT '{}'::jsonb`,
	`ALTER TABLE blog_posts ADD COLUMN IF NOT EXISTS status TEXT NOT NULL DEFAULT 'published'`,
}

// EnsureSchema creates any missing tables and columns. Statements are
// idempotent so running at every startup is safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
