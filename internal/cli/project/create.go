package project

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project owned by the acting user.

Names are trimmed and must be unique among your projects, ignoring case.

Examples:
  # Simple project (human-readable output)
  tracker project create --name="Backend API"

  # JSON output for agents
  tracker project create --name="Backend API" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(tracker project create --name="Backend API" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	name, _ := cmd.Flags().GetString("name")

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

	project, err := cliInstance.App.ProjectService.CreateProject(ctx, user, name)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewProjectView(project))
	}
	formatter.Message("Project '%s' created successfully (ID: %d)", project.Name, project.ID)
	return nil
}
