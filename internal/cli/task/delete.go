package task

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/types"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.NoArgs,
		RunE:  runDelete,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	rawID, _ := cmd.Flags().GetInt("id")
	if rawID <= 0 {
		return formatter.Fail(&cli.UsageError{Message: "task ID must be a positive integer"})
	}
	taskID := types.TaskID(rawID)

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

	// Get task details for confirmation
	task, err := cliInstance.App.TaskService.GetUserTask(ctx, user, taskID)
	if err != nil {
		return formatter.Fail(err)
	}

	// Ask for confirmation unless force, JSON or quiet mode
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Fprintf(formatter.Out, "Delete task #%d: '%s'? (y/N): ", task.ID, task.Name)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(formatter.Out, "Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, user, taskID); err != nil {
		return formatter.Fail(err)
	}

	// Output success
	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"task_id": taskID})
	}
	formatter.Message("Task %d deleted successfully", taskID)
	return nil
}
