package project

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
)

// TreeCmd returns the project tree subcommand
func TreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Display every project with its tasks",
		Long: `Display all of your projects, newest first, each with its tasks indented
underneath in display order: active tasks before done ones, then by priority,
then newest first.`,
		Args: cobra.NoArgs,
		RunE: runTree,
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runTree(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

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

	projects, err := cliInstance.App.ProjectService.GetUserProjectsWithTasks(ctx, user)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(cli.NewProjectTree(projects))
}
