package database

import (
	"fmt"
	"log"
)

// Migrate runs all database migrations
func (db *DB) Migrate() error {
	log.Printf("[DB] Running migrations...")

	migrations := []string{
		// Users table
		`CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			username TEXT,
			join_date TEXT NOT NULL,
			is_vip BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_join_date ON users(join_date)`,

		// Downloads ledger. No foreign key to users: quota counting
		// depends on every write landing, even when the user row has
		// not been created yet.
		`CREATE TABLE IF NOT EXISTS downloads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			url TEXT NOT NULL,
			platform TEXT,
			quality TEXT NOT NULL,
			download_date TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_user_id ON downloads(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_download_date ON downloads(download_date)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_platform ON downloads(platform)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}

	log.Printf("[DB] Migrations completed successfully")
	return nil
}
