package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

const createModelsTable = `
	CREATE TABLE IF NOT EXISTS models (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"prompt" TEXT,
			"image_url" TEXT,
			"profile" TEXT
	);`

// Store is the sqlite-backed record store. It is created once at startup
// and shared by all handlers.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the sqlite file at path and makes sure the
// models table exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to open database: %w", err)
	}
	// sqlite allows one writer; a single connection serializes inserts
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open(): failed to connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("storage.Open(): Init and create table successfully! (%s)", path)
	return s, nil
}

// Initialize creates the models table if it is absent. Safe to call again.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createModelsTable); err != nil {
		return fmt.Errorf("storage.Initialize(): failed to create models table: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
