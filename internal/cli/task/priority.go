package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// PriorityCmd returns the task priority subcommand
func PriorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority <task_id> <priority>",
		Short: "Set a task's priority",
		Long: `Set a task's priority to a value from 1 (very low) to 5 (very high), or
one of the names very-low, low, medium, high, very-high.

Examples:
  tracker task priority 42 5
  tracker task priority 42 high
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, err := cli.ParsePriority(args[1])
			if err != nil {
				return cli.NewFormatter(cmd).Fail(err)
			}
			return runChange(cmd, args[0],
				func(ctx context.Context, c *cli.CLI, user *models.User, id types.TaskID) (*models.Task, error) {
					return c.App.TaskService.SetPriority(ctx, user, id, priority)
				},
				func(t *models.Task) string {
					return fmt.Sprintf("Task %d priority set to %s", t.ID, models.PriorityLabel(t.Priority))
				})
		},
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}
