package cli

import (
	"database/sql"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/tracker/internal/app"
	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// Cheap hashes keep user commands fast
	appInstance := app.New(db, app.WithPasswordHashCost(bcrypt.MinCost))

	return db, appInstance
}

// CreateTestUser wraps testutil.CreateTestUserWithEmail for CLI tests
func CreateTestUser(t *testing.T, testApp *app.App, email string) *models.User {
	t.Helper()
	return testutil.CreateTestUserWithEmail(t, testApp.Repo(), email)
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, testApp *app.App, owner *models.User, name string) *models.Project {
	t.Helper()
	return testutil.CreateTestProject(t, testApp.Repo(), owner, name)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, testApp *app.App, project *models.Project, title string) *models.Task {
	t.Helper()
	return testutil.CreateTestTask(t, testApp.Repo(), project, title)
}

// CreateTestTaskWith wraps testutil.CreateTestTaskWith for CLI tests
func CreateTestTaskWith(t *testing.T, testApp *app.App, fields database.TaskFields) *models.Task {
	t.Helper()
	return testutil.CreateTestTaskWith(t, testApp.Repo(), fields)
}
