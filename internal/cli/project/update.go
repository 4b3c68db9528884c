package project

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a project",
		Long: `Rename one of your projects. The new name must not collide with any of
your other projects, ignoring case; keeping the same name is allowed.

Examples:
  tracker project update --id=1 --name="Work (2026)"
`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("name", "", "New project name")

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, err := projectIDArg(cmd, args)
	if err != nil {
		return formatter.Fail(err)
	}

	var patch models.ProjectPatch
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		patch.Name = &name
	}
	if patch.IsEmpty() {
		return formatter.Fail(&cli.UsageError{Message: "nothing to update: pass --name"})
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

	project, err := cliInstance.App.ProjectService.UpdateProject(ctx, user, projectID, patch)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewProjectView(project))
	}
	formatter.Message("Project %d renamed to '%s'", project.ID, project.Name)
	return nil
}
