package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order on every start; each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL,
		email_key TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		is_staff BOOLEAN NOT NULL DEFAULT 0,
		is_superuser BOOLEAN NOT NULL DEFAULT 0,
		date_joined DATETIME NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL CHECK (length(name) BETWEEN 1 AND 255),
		name_key TEXT NOT NULL DEFAULT '',
		user_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_user_created ON projects(user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_updated ON projects(updated_at DESC)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL CHECK (length(name) BETWEEN 1 AND 255),
		project_id INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'new' CHECK (status IN ('new', 'in_progress', 'done')),
		priority INTEGER NOT NULL DEFAULT 3 CHECK (priority BETWEEN 1 AND 5),
		deadline DATETIME,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project_status_created ON tasks(project_id, status, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline) WHERE deadline IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deadline_status ON tasks(deadline, status) WHERE deadline IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_updated ON tasks(updated_at DESC)`,
}

// keyIndexes run after the folded key columns are filled. They are the
// correctness guarantee for duplicate emails and per-owner project names;
// the service checks only give a nicer error first.
var keyIndexes = []string{
	// ASCII-only index from earlier databases, superseded by name_key
	`DROP INDEX IF EXISTS idx_projects_user_name`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_key ON users(email_key)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_user_name_key ON projects(user_id, name_key)`,
}

// foldedColumn is a key column derived from source with foldKey
type foldedColumn struct {
	table, source, key string
}

var foldedColumns = []foldedColumn{
	{table: "users", source: "email", key: "email_key"},
	{table: "projects", source: "name", key: "name_key"},
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}

	for _, col := range foldedColumns {
		if err := backfillKey(ctx, db, col); err != nil {
			return fmt.Errorf("backfill %s.%s: %w", col.table, col.key, err)
		}
	}

	for i, stmt := range keyIndexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("key index step %d: %w", i+1, err)
		}
	}
	return nil
}

// backfillKey adds col.key to databases created before it existed and fills
// every empty key from its source column
func backfillKey(ctx context.Context, db *sql.DB, col foldedColumn) error {
	exists, err := columnExists(ctx, db, col.table, col.key)
	if err != nil {
		return err
	}
	if !exists {
		if _, err := db.ExecContext(ctx,
			`ALTER TABLE `+col.table+` ADD COLUMN `+col.key+` TEXT NOT NULL DEFAULT ''`); err != nil {
			return err
		}
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT id, `+col.source+` FROM `+col.table+` WHERE `+col.key+` = ''`)
		if err != nil {
			return err
		}

		keys := make(map[int64]string)
		for rows.Next() {
			var id int64
			var source string
			if err := rows.Scan(&id, &source); err != nil {
				closeRows(rows)
				return err
			}
			keys[id] = foldKey(source)
		}
		closeRows(rows)
		if err := rows.Err(); err != nil {
			return err
		}

		for id, key := range keys {
			if _, err := tx.ExecContext(ctx,
				`UPDATE `+col.table+` SET `+col.key+` = ? WHERE id = ?`, key, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func columnExists(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
