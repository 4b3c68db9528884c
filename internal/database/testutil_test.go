package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/thenoetrevino/tracker/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the real migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestRepo returns a repository over a fresh in-memory database
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t), nil)
}

// createTestUser inserts a user with a unique email
func createTestUser(t *testing.T, repo *Repository, email string) *models.User {
	t.Helper()
	u, err := repo.Users().Create(context.Background(), UserFields{Email: email, IsActive: true})
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return u
}

// createTestProject inserts a project for user
func createTestProject(t *testing.T, repo *Repository, user *models.User, name string) *models.Project {
	t.Helper()
	p, err := repo.Projects().Create(context.Background(), user.ID, name)
	if err != nil {
		t.Fatalf("Failed to create project %s: %v", name, err)
	}
	return p
}

// createTestTask inserts a task with the given status and priority
func createTestTask(t *testing.T, repo *Repository, project *models.Project, name string, status models.TaskStatus, priority int) *models.Task {
	t.Helper()
	task, err := repo.Tasks().Create(context.Background(), TaskFields{
		ProjectID: project.ID,
		Name:      name,
		Status:    status,
		Priority:  priority,
	})
	if err != nil {
		t.Fatalf("Failed to create task %s: %v", name, err)
	}
	return task
}

// countRows returns the number of rows in table
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
