package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

// legacySchema is the layout written before the folded key columns existed
var legacySchema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL COLLATE NOCASE UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		is_staff BOOLEAN NOT NULL DEFAULT 0,
		is_superuser BOOLEAN NOT NULL DEFAULT 0,
		date_joined DATETIME NOT NULL
	)`,
	`CREATE TABLE projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL CHECK (length(name) BETWEEN 1 AND 255),
		user_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE UNIQUE INDEX idx_projects_user_name ON projects(user_id, lower(name))`,
	`INSERT INTO users (email, date_joined) VALUES ('Jürgen@example.com', '2024-01-01 00:00:00')`,
	`INSERT INTO projects (name, user_id, created_at, updated_at) VALUES ('Über', 1, '2024-01-01 00:00:00', '2024-01-01 00:00:00')`,
}

func TestInitDB_BackfillsKeysOnLegacyDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		t.Fatalf("Failed to open legacy database: %v", err)
	}
	for _, stmt := range legacySchema {
		if _, err := legacy.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to build legacy schema: %v", err)
		}
	}
	if err := legacy.Close(); err != nil {
		t.Fatalf("Failed to close legacy database: %v", err)
	}

	db, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("InitDB on legacy database failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	var nameKey, emailKey string
	if err := db.QueryRow(`SELECT name_key FROM projects WHERE id = 1`).Scan(&nameKey); err != nil {
		t.Fatalf("Failed to read name_key: %v", err)
	}
	if nameKey != foldKey("Über") {
		t.Errorf("Expected backfilled name_key %q, got %q", foldKey("Über"), nameKey)
	}
	if err := db.QueryRow(`SELECT email_key FROM users WHERE id = 1`).Scan(&emailKey); err != nil {
		t.Fatalf("Failed to read email_key: %v", err)
	}
	if emailKey != foldKey("jürgen@example.com") {
		t.Errorf("Expected backfilled email_key, got %q", emailKey)
	}

	repo := NewRepository(db, nil)
	if _, err := repo.Projects().Create(ctx, 1, "über"); !errors.Is(err, ErrDuplicateProjectName) {
		t.Errorf("Expected legacy project name to be enforced, got %v", err)
	}
	if _, err := repo.Users().GetByEmail(ctx, "JÜRGEN@example.com"); err != nil {
		t.Errorf("Expected legacy user to be found by folded email, got %v", err)
	}
}

func TestInitDB_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tracker.db")

	for i := 0; i < 2; i++ {
		db, err := InitDB(ctx, path)
		if err != nil {
			t.Fatalf("InitDB run %d failed: %v", i+1, err)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}
}
