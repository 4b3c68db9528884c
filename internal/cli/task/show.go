package task

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show a task",
		Long: `Show a task owned by the acting user.

Examples:
  tracker task show 12
  tracker task show 12 --card
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, _ := cmd.Flags().GetBool("card")
			return runChange(cmd, args[0],
				func(ctx context.Context, c *cli.CLI, user *models.User, id types.TaskID) (*models.Task, error) {
					return c.App.TaskService.GetUserTask(ctx, user, id)
				},
				func(t *models.Task) string {
					if card {
						return renderCard(t, time.Now())
					}
					return humanTask(t)
				})
		},
	}

	cmd.Flags().Bool("card", false, "Render the task as a styled card")
	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

// humanTask renders the one-line form of t
func humanTask(t *models.Task) string {
	var b strings.Builder
	cli.NewTaskView(t).WriteHuman(&b)
	return strings.TrimRight(b.String(), "\n")
}
