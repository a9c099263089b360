package db

import "database/sql"

// MigrateUp creates the schema if it does not exist. Statements are
// idempotent so the call is safe on every startup.
func MigrateUp(pool *sql.DB) error {
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id         TEXT PRIMARY KEY,
    owner_id   TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title      TEXT NOT NULL,
    body       TEXT NOT NULL,
    tags       TEXT[] NOT NULL DEFAULT '{}',
    summary    TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Listing always filters by owner and orders by recency.
		`CREATE INDEX IF NOT EXISTS idx_articles_owner_updated_at ON articles(owner_id, updated_at DESC)`,
		// Tag filtering uses the && overlap operator.
		`CREATE INDEX IF NOT EXISTS idx_articles_tags_gin ON articles USING gin(tags)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up ILIKE search. Errors are ignored because the
	// extension may already exist or the role may lack the privilege.
	_, _ = pool.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)

	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_body_gin ON articles USING gin(body gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// These fail without pg_trgm; search still works, just slower.
		_, _ = pool.Exec(idx)
	}

	return nil
}
