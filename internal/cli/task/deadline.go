package task

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// DeadlineCmd returns the task deadline subcommand
func DeadlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadline <task_id> <deadline>",
		Short: "Set a task's deadline",
		Long: `Set a task's deadline. The deadline may not be in the past.

A bare date means the end of that day in local time.

Examples:
  tracker task deadline 42 2027-01-31
  tracker task deadline 42 "2027-01-31 09:00"
  tracker task deadline 42 2027-01-31T09:00:00Z
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deadline, err := cli.ParseDeadline(args[1], time.Local)
			if err != nil {
				return cli.NewFormatter(cmd).Fail(err)
			}
			return runChange(cmd, args[0],
				func(ctx context.Context, c *cli.CLI, user *models.User, id types.TaskID) (*models.Task, error) {
					return c.App.TaskService.SetDeadline(ctx, user, id, deadline)
				},
				func(t *models.Task) string {
					return fmt.Sprintf("Task %d is due %s", t.ID, t.Deadline.Local().Format("2006-01-02 15:04"))
				})
		},
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}
