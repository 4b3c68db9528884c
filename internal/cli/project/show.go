package project

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project_id>",
		Short: "Show a project and its tasks",
		Long:  "Show one of your projects with its tasks in display order (active first, then by priority).",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

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

	project, err := cliInstance.App.ProjectService.GetUserProject(ctx, user, projectID)
	if err != nil {
		return formatter.Fail(err)
	}
	tasks, err := cliInstance.App.TaskService.GetProjectTasksSorted(ctx, user, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	view := cli.NewProjectView(project)
	view.Tasks = cli.NewTaskList(tasks)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	view.WriteHuman(formatter.Out)
	view.Tasks.WriteHuman(formatter.Out)
	return nil
}
