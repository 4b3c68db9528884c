package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <task_id>",
		Short: "Toggle a task between done and not done",
		Long: `Mark an unfinished task as done, or reopen a done task as in progress.

Examples:
  tracker task toggle 42
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChange(cmd, args[0],
				func(ctx context.Context, c *cli.CLI, user *models.User, id types.TaskID) (*models.Task, error) {
					return c.App.TaskService.ToggleTaskStatus(ctx, user, id)
				},
				func(t *models.Task) string {
					return fmt.Sprintf("Task %d is now %s", t.ID, t.Status.Label())
				})
		},
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}
