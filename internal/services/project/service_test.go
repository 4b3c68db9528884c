package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/testutil"
	"github.com/thenoetrevino/tracker/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return NewService(repo.Projects(), nil), repo
}

func strPtr(s string) *string {
	return &s
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateProject(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	user := testutil.CreateTestUser(t, repo)

	project, err := svc.CreateProject(context.Background(), user, "  Test Project  ")

	require.NoError(t, err)
	assert.NotZero(t, project.ID)
	assert.Equal(t, "Test Project", project.Name)
	assert.Equal(t, user.ID, project.UserID)
}

func TestCreateProject_InvalidNames(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	user := testutil.CreateTestUser(t, repo)

	_, err := svc.CreateProject(context.Background(), user, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}
	_, err = svc.CreateProject(context.Background(), user, string(long))
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestCreateProject_DuplicateNameScenario(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	ctx := context.Background()
	alice := testutil.CreateTestUser(t, repo)
	bob := testutil.CreateTestUser(t, repo)

	work, err := svc.CreateProject(ctx, alice, "Work")
	require.NoError(t, err)
	assert.Equal(t, "Work", work.Name)

	_, err = svc.CreateProject(ctx, alice, "work ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateName)
	field, _ := models.ValidationField(err)
	assert.Equal(t, "name", field)

	bobWork, err := svc.CreateProject(ctx, bob, "Work")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, bobWork.UserID)
}

func TestCreateProject_DuplicateNameNonASCII(t *testing.T) {
	t.Parallel()

	tests := []struct{ first, second string }{
		{"Über", "über"},
		{"ПРОЕКТ", "проект"},
		{"ΣΟΦΙΑ", "σοφια"},
	}

	for _, tt := range tests {
		t.Run(tt.first, func(t *testing.T) {
			svc, repo := setupService(t)
			ctx := context.Background()
			user := testutil.CreateTestUser(t, repo)

			_, err := svc.CreateProject(ctx, user, tt.first)
			require.NoError(t, err)

			_, err = svc.CreateProject(ctx, user, tt.second)
			assert.ErrorIs(t, err, ErrDuplicateName)
		})
	}
}

func TestCreateProject_RequiresUser(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)

	_, err := svc.CreateProject(context.Background(), nil, "Work")

	assert.True(t, models.IsPermissionDenied(err))
}

func TestUpdateProject(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, repo)
	project := testutil.CreateTestProject(t, repo, user, "Old")
	testutil.CreateTestProject(t, repo, user, "Taken")

	t.Run("rename trims", func(t *testing.T) {
		updated, err := svc.UpdateProject(ctx, user, project.ID, models.ProjectPatch{Name: strPtr(" New ")})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
	})

	t.Run("same name other case excludes self", func(t *testing.T) {
		updated, err := svc.UpdateProject(ctx, user, project.ID, models.ProjectPatch{Name: strPtr("NEW")})
		require.NoError(t, err)
		assert.Equal(t, "NEW", updated.Name)
	})

	t.Run("collides with sibling", func(t *testing.T) {
		_, err := svc.UpdateProject(ctx, user, project.ID, models.ProjectPatch{Name: strPtr("taken")})
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("empty patch only checks ownership", func(t *testing.T) {
		updated, err := svc.UpdateProject(ctx, user, project.ID, models.ProjectPatch{})
		require.NoError(t, err)
		assert.Equal(t, "NEW", updated.Name)
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := svc.UpdateProject(ctx, user, types.ProjectID(9999), models.ProjectPatch{Name: strPtr("x")})
		assert.True(t, models.IsNotFound(err))
	})
}

func TestCrossUserIsolation(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	ctx := context.Background()
	alice := testutil.CreateTestUser(t, repo)
	bob := testutil.CreateTestUser(t, repo)
	project := testutil.CreateTestProject(t, repo, alice, "Private")

	_, err := svc.GetUserProject(ctx, bob, project.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.UpdateProject(ctx, bob, project.ID, models.ProjectPatch{Name: strPtr("Stolen")})
	assert.True(t, models.IsPermissionDenied(err))

	_, err = svc.UpdateProject(ctx, bob, project.ID, models.ProjectPatch{})
	assert.True(t, models.IsPermissionDenied(err))

	err = svc.DeleteProject(ctx, bob, project.ID)
	assert.True(t, models.IsPermissionDenied(err))

	bobs, err := svc.GetUserProjects(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	found, err := svc.SearchUserProjects(ctx, bob, "Priv")
	require.NoError(t, err)
	assert.Empty(t, found)

	dashboard, err := svc.GetUserProjectsWithTasks(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, dashboard)

	// still intact for the owner
	got, err := svc.GetUserProject(ctx, alice, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", got.Name)
}

func TestDeleteProject_CascadesToTasks(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, repo)
	project := testutil.CreateTestProject(t, repo, user, "Doomed")
	task := testutil.CreateTestTask(t, repo, project, "Child")

	require.NoError(t, svc.DeleteProject(ctx, user, project.ID))

	_, err := svc.GetUserProject(ctx, user, project.ID)
	assert.True(t, models.IsNotFound(err))

	_, err = repo.Tasks().GetByID(ctx, task.ID)
	assert.True(t, models.IsNotFound(err))
}

func TestGetUserProjectsWithTasks(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, repo)
	project := testutil.CreateTestProject(t, repo, user, "Work")
	done := testutil.CreateTestTaskWith(t, repo, database.TaskFields{
		ProjectID: project.ID, Name: "done", Status: models.StatusDone, Priority: 5,
	})
	active := testutil.CreateTestTask(t, repo, project, "active")

	result, err := svc.GetUserProjectsWithTasks(ctx, user)

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].Tasks, 2)
	assert.Equal(t, active.ID, result[0].Tasks[0].ID)
	assert.Equal(t, done.ID, result[0].Tasks[1].ID)
}

func TestSearchUserProjects(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, repo)
	testutil.CreateTestProject(t, repo, user, "Garden")
	testutil.CreateTestProject(t, repo, user, "Garage")
	testutil.CreateTestProject(t, repo, user, "Office")

	found, err := svc.SearchUserProjects(ctx, user, "gar")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	all, err := svc.SearchUserProjects(ctx, user, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
