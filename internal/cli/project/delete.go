package project

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		Long: `Delete a project by ID together with all of its tasks.

Requires confirmation unless --force or --quiet is given.`,
		Args: cobra.NoArgs,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Project ID (required)")
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

	projectID, err := projectIDArg(cmd, args)
	if err != nil {
		return formatter.Fail(err)
	}

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

	// Get project details for confirmation
	project, err := cliInstance.App.ProjectService.GetUserProject(ctx, user, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	// Ask for confirmation unless force, JSON or quiet mode
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Fprintf(formatter.Out, "Delete project #%d: '%s' and all its tasks? (y/N): ", project.ID, project.Name)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(formatter.Out, "Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.ProjectService.DeleteProject(ctx, user, projectID); err != nil {
		return formatter.Fail(err)
	}

	// Output success
	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"project_id": projectID})
	}
	formatter.Message("Project %d deleted successfully", projectID)
	return nil
}
