package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// schemaStatements create the catalog tables when they do not exist yet.
// Referential rules (no delete while books reference an author or genre)
// live in the services, not in the schema.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id            UUID PRIMARY KEY,
		first_name    TEXT NOT NULL,
		family_name   TEXT NOT NULL,
		date_of_birth DATE,
		date_of_death DATE
	)`,
	`CREATE TABLE IF NOT EXISTS genres (
		id   UUID PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS genres_name_idx ON genres (name)`,
	`CREATE TABLE IF NOT EXISTS books (
		id        UUID PRIMARY KEY,
		title     TEXT NOT NULL,
		summary   TEXT NOT NULL DEFAULT '',
		isbn      TEXT NOT NULL DEFAULT '',
		author_id UUID NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS books_author_id_idx ON books (author_id)`,
	`CREATE TABLE IF NOT EXISTS book_genres (
		book_id  UUID NOT NULL,
		genre_id UUID NOT NULL,
		PRIMARY KEY (book_id, genre_id)
	)`,
	`CREATE INDEX IF NOT EXISTS book_genres_genre_id_idx ON book_genres (genre_id)`,
}

// EnsureSchema creates missing tables and indexes. It is idempotent.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			// Two instances racing on CREATE ... IF NOT EXISTS can collide on the
			// catalog's own unique index; the object exists either way.
			if IsPgCode(err, CodeUniqueViolation) {
				log.Debug().Err(err).Msg("[DATABASE] Schema object created concurrently")
				continue
			}
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	log.Info().Int("statements", len(schemaStatements)).Msg("[DATABASE] Schema ready")
	return nil
}
