package project

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	projectservice "github.com/thenoetrevino/tracker/internal/services/project"
	testcli "github.com/thenoetrevino/tracker/internal/testutil/cli"
)

func TestCreateProject_Positive(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	alice := testcli.CreateTestUser(t, app, "alice@example.com")

	t.Run("quiet prints the new id", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Work", "--as", alice.Email, "--quiet",
		})
		require.NoError(t, err)

		projectID, err := strconv.Atoi(strings.TrimSpace(res.Stdout))
		require.NoError(t, err)

		var name string
		var owner int
		err = db.QueryRow("SELECT name, user_id FROM projects WHERE id = ?", projectID).Scan(&name, &owner)
		require.NoError(t, err)
		assert.Equal(t, "Work", name)
		assert.Equal(t, alice.ID.ToInt(), owner)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "  Home  ", "--as", alice.Email, "--json",
		})
		require.NoError(t, err)

		data := testcli.Data(t, res.Stdout)
		assert.Equal(t, "Home", data["name"])
	})

	t.Run("human output", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Garden", "--as", alice.Email,
		})
		require.NoError(t, err)
		assert.Contains(t, res.Stdout, "Project 'Garden' created successfully")
	})
}

func TestCreateProject_Negative(t *testing.T) {
	_, app := testcli.SetupCLITest(t)
	alice := testcli.CreateTestUser(t, app, "alice@example.com")
	bob := testcli.CreateTestUser(t, app, "bob@example.com")
	testcli.CreateTestProject(t, app, alice, "Work")

	t.Run("duplicate name ignoring case and spaces", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", " work ", "--as", alice.Email, "--json",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, projectservice.ErrDuplicateName)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))

		result := testcli.ParseJSON(t, res.Stdout)
		assert.Equal(t, false, result["success"])
	})

	t.Run("other owner may reuse the name", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Work", "--as", bob.Email, "--quiet",
		})
		assert.NoError(t, err)
	})

	t.Run("blank name", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "   ", "--as", alice.Email,
		})
		assert.ErrorIs(t, err, projectservice.ErrEmptyName)
		assert.Contains(t, res.Stderr, "Project name cannot be empty")
	})

	t.Run("too long", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", strings.Repeat("x", models.MaxNameLength+1), "--as", alice.Email,
		})
		assert.ErrorIs(t, err, projectservice.ErrNameTooLong)
	})

	t.Run("unknown acting user", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Ghost", "--as", "nobody@example.com",
		})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	})

	t.Run("missing required flag", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--as", alice.Email})
		assert.Error(t, err)
	})
}

func TestListProjects(t *testing.T) {
	_, app := testcli.SetupCLITest(t)
	alice := testcli.CreateTestUser(t, app, "alice@example.com")
	bob := testcli.CreateTestUser(t, app, "bob@example.com")
	reno := testcli.CreateTestProject(t, app, alice, "Home Renovation")
	work := testcli.CreateTestProject(t, app, alice, "Work")
	testcli.CreateTestProject(t, app, bob, "Bob's Renovation")

	t.Run("only own projects, newest first", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--as", alice.Email, "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{strconv.Itoa(work.GetID()), strconv.Itoa(reno.GetID())},
			strings.Fields(res.Stdout))
	})

	t.Run("search ignores case", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--as", alice.Email, "--search", "RENO", "--json"})
		require.NoError(t, err)

		list := testcli.DataList(t, res.Stdout)
		require.Len(t, list, 1)
		assert.Equal(t, "Home Renovation", list[0].(map[string]interface{})["name"])
	})

	t.Run("human output", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--as", bob.Email})
		require.NoError(t, err)
		assert.Contains(t, res.Stdout, "Found 1 projects")
		assert.Contains(t, res.Stdout, "Bob's Renovation")
	})
}

func TestShowProject(t *testing.T) {
	_, app := testcli.SetupCLITest(t)
	alice := testcli.CreateTestUser(t, app, "alice@example.com")
	bob := testcli.CreateTestUser(t, app, "bob@example.com")
	work := testcli.CreateTestProject(t, app, alice, "Work")
	testcli.CreateTestTask(t, app, work, "Write report")

	res, err := testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{strconv.Itoa(work.GetID()), "--as", alice.Email, "--json"})
	require.NoError(t, err)
	data := testcli.Data(t, res.Stdout)
	assert.Equal(t, "Work", data["name"])
	assert.Len(t, data["tasks"], 1)

	_, err = testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{strconv.Itoa(work.GetID()), "--as", bob.Email})
	assert.Equal(t, cli.ExitPermissionDenied, cli.ExitCodeFor(err))

	_, err = testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"abc", "--as", alice.Email})
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestUpdateProject(t *testing.T) {
	_, app := testcli.SetupCLITest(t)
	alice := testcli.CreateTestUser(t, app, "alice@example.com")
	bob := testcli.CreateTestUser(t, app, "bob@example.com")
	work := testcli.CreateTestProject(t, app, alice, "Work")
	testcli.CreateTestProject(t, app, alice, "Home")
	id := strconv.Itoa(work.GetID())

	t.Run("rename", func(t *testing.T) {
		res, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", id, "--name", "Job", "--as", alice.Email, "--json"})
		require.NoError(t, err)
		assert.Equal(t, "Job", testcli.Data(t, res.Stdout)["name"])
	})

	t.Run("same name with different case is allowed", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", id, "--name", "JOB", "--as", alice.Email, "--quiet"})
		assert.NoError(t, err)
	})

	t.Run("collision with another project", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", id, "--name", "home", "--as", alice.Email})
		assert.ErrorIs(t, err, projectservice.ErrDuplicateName)
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", id, "--name", "Mine", "--as", bob.Email})
		assert.ErrorIs(t, err, projectservice.ErrNotOwner)
		assert.Equal(t, cli.ExitPermissionDenied, cli.ExitCodeFor(err))
	})

	t.Run("nothing to update", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", id, "--as", alice.Email})
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", "999", "--name", "x", "--as", alice.Email})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	})
}

func TestDeleteProject(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	alice := testcli.CreateTestUser(t, app, "alice@example.com")
	bob := testcli.CreateTestUser(t, app, "bob@example.com")

	t.Run("confirmation declined keeps the project", func(t *testing.T) {
		p := testcli.CreateTestProject(t, app, alice, "Keep")
		res, err := testcli.ExecuteCLICommandWithInput(t, app, DeleteCmd(),
			[]string{"--id", strconv.Itoa(p.GetID()), "--as", alice.Email}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, res.Stdout, "Cancelled")
		assert.Equal(t, 1, countRows(t, app, "SELECT COUNT(*) FROM projects WHERE id = ?", p.ID))
	})

	t.Run("confirmed delete cascades to tasks", func(t *testing.T) {
		p := testcli.CreateTestProject(t, app, alice, "Doomed")
		testcli.CreateTestTask(t, app, p, "a")
		testcli.CreateTestTask(t, app, p, "b")

		res, err := testcli.ExecuteCLICommandWithInput(t, app, DeleteCmd(),
			[]string{"--id", strconv.Itoa(p.GetID()), "--as", alice.Email}, "yes\n")
		require.NoError(t, err)
		assert.Contains(t, res.Stdout, "deleted successfully")

		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM tasks WHERE project_id = ?", p.ID).Scan(&n))
		assert.Zero(t, n)
	})

	t.Run("other owner cannot delete", func(t *testing.T) {
		p := testcli.CreateTestProject(t, app, alice, "Private")
		_, err := testcli.ExecuteCLICommand(t, app, DeleteCmd(),
			[]string{"--id", strconv.Itoa(p.GetID()), "--as", bob.Email, "--force"})
		assert.Equal(t, cli.ExitPermissionDenied, cli.ExitCodeFor(err))
		assert.Equal(t, 1, countRows(t, app, "SELECT COUNT(*) FROM projects WHERE id = ?", p.ID))
	})

	t.Run("deleted project is not found afterwards", func(t *testing.T) {
		p := testcli.CreateTestProject(t, app, alice, "Twice")
		args := []string{"--id", strconv.Itoa(p.GetID()), "--as", alice.Email, "--quiet"}

		_, err := testcli.ExecuteCLICommand(t, app, DeleteCmd(), args)
		require.NoError(t, err)
		_, err = testcli.ExecuteCLICommand(t, app, DeleteCmd(), args)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	})
}

func TestTreeProjects(t *testing.T) {
	_, app := testcli.SetupCLITest(t)
	alice := testcli.CreateTestUser(t, app, "alice@example.com")
	empty := testcli.CreateTestProject(t, app, alice, "Empty")
	work := testcli.CreateTestProject(t, app, alice, "Work")
	testcli.CreateTestTask(t, app, work, "Report")

	res, err := testcli.ExecuteCLICommand(t, app, TreeCmd(), []string{"--as", alice.Email, "--json"})
	require.NoError(t, err)

	list := testcli.DataList(t, res.Stdout)
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	second := list[1].(map[string]interface{})
	assert.Equal(t, float64(work.ID), first["id"])
	assert.Len(t, first["tasks"], 1)
	assert.Equal(t, float64(empty.ID), second["id"])
	assert.Nil(t, second["tasks"])

	res, err = testcli.ExecuteCLICommand(t, app, TreeCmd(), []string{"--as", alice.Email})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "[1] Report (New, priority Medium)")
}
