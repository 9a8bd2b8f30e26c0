// Package database provides schema instantiation
package database

import (
	"database/sql"
	"fmt"
)

// TableCreator handles the creation of the database schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all necessary queries to build the database tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS games (id TEXT PRIMARY KEY, title TEXT NOT NULL, slug TEXT NOT NULL UNIQUE, developer TEXT, release_year INTEGER, image_url TEXT)`,
	`CREATE TABLE IF NOT EXISTS characters (id TEXT PRIMARY KEY, game_id TEXT NOT NULL REFERENCES games(id), name TEXT NOT NULL, slug TEXT NOT NULL, archetype TEXT, description TEXT, image_url TEXT, UNIQUE(game_id, slug))`,
	`CREATE TABLE IF NOT EXISTS combos (id TEXT PRIMARY KEY, game_id TEXT NOT NULL REFERENCES games(id), character_id TEXT NOT NULL REFERENCES characters(id), name TEXT NOT NULL, damage INTEGER NOT NULL DEFAULT 0, difficulty TEXT NOT NULL DEFAULT 'medium', tags TEXT NOT NULL DEFAULT '[]', notation TEXT NOT NULL DEFAULT '[]', likes TEXT NOT NULL DEFAULT '[]', dislikes TEXT NOT NULL DEFAULT '[]', created_by TEXT NOT NULL, created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, changed TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS game_notation (game_id TEXT NOT NULL REFERENCES games(id), category_id TEXT NOT NULL, elements TEXT NOT NULL, position INTEGER NOT NULL DEFAULT 0, PRIMARY KEY(game_id, category_id))`,
	`CREATE TABLE IF NOT EXISTS users (id TEXT PRIMARY KEY, email TEXT NOT NULL UNIQUE, username TEXT NOT NULL, password_hash TEXT NOT NULL, favorite_characters TEXT NOT NULL DEFAULT '[]', favorite_combos TEXT NOT NULL DEFAULT '[]', created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_characters_game_id ON characters(game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_combos_character_id ON combos(character_id)`,
	`CREATE INDEX IF NOT EXISTS idx_combos_game_id ON combos(game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_game_notation_game_id ON game_notation(game_id)`,
}
