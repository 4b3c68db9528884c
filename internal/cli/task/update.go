package task

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update task fields",
		Long: `Update the title, priority or deadline of a task. Only the flags you
pass are changed. Status moves only through 'task done' and 'task toggle'.

Examples:
  tracker task update --id=5 --title="Buy oat milk"
  tracker task update --id=5 --priority=high
  tracker task update --id=5 --clear-deadline
`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("priority", "", "New priority (1-5 or a name)")
	cmd.Flags().String("deadline", "", "New deadline: YYYY-MM-DD, 'YYYY-MM-DD HH:MM' or RFC 3339")
	cmd.Flags().Bool("clear-deadline", false, "Remove the deadline")
	cmd.MarkFlagsMutuallyExclusive("deadline", "clear-deadline")

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, _ := cmd.Flags().GetInt("id")
	if taskID <= 0 {
		return formatter.Fail(&cli.UsageError{Message: "task ID must be a positive integer"})
	}

	patch, err := parsePatch(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	if patch.IsEmpty() {
		return formatter.Fail(&cli.UsageError{
			Message: "nothing to update: pass --title, --priority, --deadline or --clear-deadline",
		})
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

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, user, types.TaskID(taskID), patch)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewTaskView(task))
	}
	formatter.Message("Task %d updated successfully", task.ID)
	return nil
}

// parsePatch builds a TaskPatch from the flags that were actually set
func parsePatch(cmd *cobra.Command) (models.TaskPatch, error) {
	var patch models.TaskPatch
	flags := cmd.Flags()

	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		patch.Name = &title
	}
	if flags.Changed("priority") {
		raw, _ := flags.GetString("priority")
		priority, err := cli.ParsePriority(raw)
		if err != nil {
			return patch, err
		}
		patch.Priority = &priority
	}
	if flags.Changed("deadline") {
		raw, _ := flags.GetString("deadline")
		deadline, err := cli.ParseDeadline(raw, time.Local)
		if err != nil {
			return patch, err
		}
		patch.Deadline = &deadline
	}
	patch.ClearDeadline, _ = flags.GetBool("clear-deadline")

	return patch, nil
}
