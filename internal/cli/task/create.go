package task

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/types"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in one of your projects. New tasks start with status
"new" and medium priority.

Examples:
  # Simple task (human-readable output)
  tracker task create --project=1 --title="Buy milk"

  # With a deadline (end of that day, local time)
  tracker task create --project=1 --title="File taxes" --deadline=2027-04-15

  # Quiet mode for bash capture
  TASK_ID=$(tracker task create --project=1 --title="Buy milk" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Int("project", 0, "Project ID (required)")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("deadline", "", "Deadline: YYYY-MM-DD, 'YYYY-MM-DD HH:MM' or RFC 3339")

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	projectID, _ := cmd.Flags().GetInt("project")

	var deadline *time.Time
	if raw, _ := cmd.Flags().GetString("deadline"); raw != "" {
		d, err := cli.ParseDeadline(raw, time.Local)
		if err != nil {
			return formatter.Fail(err)
		}
		deadline = &d
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

	task, err := cliInstance.App.TaskService.CreateTask(ctx, user, types.ProjectID(projectID), title, deadline)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewTaskView(task))
	}
	formatter.Message("Task '%s' created successfully (ID: %d)", task.Name, task.ID)
	return nil
}
