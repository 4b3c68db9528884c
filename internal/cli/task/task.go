// Package task holds all cli commands related to tasks
//
// e.g., tracker task ...
package task

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(PriorityCmd())
	cmd.AddCommand(DeadlineCmd())

	return cmd
}

// changeFunc applies one change to a task on behalf of user
type changeFunc func(ctx context.Context, c *cli.CLI, user *models.User, id types.TaskID) (*models.Task, error)

// runChange is shared by the single-purpose commands (done, toggle, priority,
// deadline): resolve the CLI and user, apply change, print the task
func runChange(cmd *cobra.Command, rawID string, change changeFunc, message func(*models.Task) string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseID("task", rawID)
	if err != nil {
		return formatter.Fail(err)
	}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	user, err := cli.ResolveUser(ctx, cmd, cliInstance)
	if err != nil {
		return formatter.Fail(err)
	}

	task, err := change(ctx, cliInstance, user, types.TaskID(taskID))
	if err != nil {
		return formatter.Fail(err)
	}

	// Output success
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewTaskView(task))
	}
	formatter.Message("%s", message(task))
	return nil
}
