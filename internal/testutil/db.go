// Package testutil provides shared fixtures for package tests: an in-memory
// database with the real schema and helpers to seed users, projects and tasks.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/models"
)

var userSeq atomic.Int64

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo creates an in-memory database and wraps it in a Repository
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t), nil)
}

// CreateTestUser creates a user with a unique email
func CreateTestUser(t *testing.T, repo database.DataStore) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@example.com", userSeq.Add(1))
	return CreateTestUserWithEmail(t, repo, email)
}

// CreateTestUserWithEmail creates an active user with the given email
func CreateTestUserWithEmail(t *testing.T, repo database.DataStore, email string) *models.User {
	t.Helper()
	user, err := repo.Users().Create(context.Background(), database.UserFields{
		Email:    email,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestProject creates a project owned by user
func CreateTestProject(t *testing.T, repo database.DataStore, user *models.User, name string) *models.Project {
	t.Helper()
	project, err := repo.Projects().Create(context.Background(), user.ID, name)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return project
}

// CreateTestTask creates a task with default status and priority
func CreateTestTask(t *testing.T, repo database.DataStore, project *models.Project, name string) *models.Task {
	t.Helper()
	return CreateTestTaskWith(t, repo, database.TaskFields{
		ProjectID: project.ID,
		Name:      name,
		Status:    models.DefaultTaskStatus,
		Priority:  models.DefaultPriority,
	})
}

// CreateTestTaskWith creates a task from explicit fields
func CreateTestTaskWith(t *testing.T, repo database.DataStore, fields database.TaskFields) *models.Task {
	t.Helper()
	task, err := repo.Tasks().Create(context.Background(), fields)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// SetTaskDeadline writes a deadline directly, bypassing validation, so tests
// can seed overdue tasks
func SetTaskDeadline(t *testing.T, db *sql.DB, task *models.Task, deadline time.Time) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"UPDATE tasks SET deadline = ? WHERE id = ?", deadline.UTC(), task.ID)
	if err != nil {
		t.Fatalf("Failed to set task deadline: %v", err)
	}
}
