package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Mark a task as done",
		Long: `Mark a task as done. Completing a task that is already done is an error
(exit code 7); use 'tracker task toggle' to reopen it.

Examples:
  tracker task done 42
  tracker task done 42 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChange(cmd, args[0],
				func(ctx context.Context, c *cli.CLI, user *models.User, id types.TaskID) (*models.Task, error) {
					return c.App.TaskService.CompleteTask(ctx, user, id)
				},
				func(t *models.Task) string {
					return fmt.Sprintf("Task %d marked as done", t.ID)
				})
		},
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}
