package project

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		Long: `List the acting user's projects, newest first.

Examples:
  tracker project list
  tracker project list --search=reno
  tracker project list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Only projects whose name contains this text (ignoring case)")

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

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

	var projects []*models.Project
	if cmd.Flags().Changed("search") {
		search, _ := cmd.Flags().GetString("search")
		projects, err = cliInstance.App.ProjectService.SearchUserProjects(ctx, user, search)
	} else {
		projects, err = cliInstance.App.ProjectService.GetUserProjects(ctx, user)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(cli.NewProjectList(projects))
}
