package task

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
	taskservice "github.com/thenoetrevino/tracker/internal/services/task"
	"github.com/thenoetrevino/tracker/internal/types"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		Long: `List tasks across all of your projects, newest first.

With only --project, the project's tasks are shown in display order instead:
active before done, then by priority, then newest first.

Examples:
  tracker task list
  tracker task list --project=1
  tracker task list --status=in_progress --priority=high
  tracker task list --overdue
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Int("project", 0, "Only tasks in this project")
	cmd.Flags().String("status", "", "Only tasks with this status: new, in_progress, done")
	cmd.Flags().String("priority", "", "Only tasks with this priority (1-5 or a name)")
	cmd.Flags().Bool("overdue", false, "Only unfinished tasks whose deadline has passed")

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	query, err := parseQuery(cmd)
	if err != nil {
		return formatter.Fail(err)
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

	var tasks []*models.Task
	if query.ProjectID.Valid() && query == (taskservice.TaskQuery{ProjectID: query.ProjectID}) {
		tasks, err = cliInstance.App.TaskService.GetProjectTasksSorted(ctx, user, query.ProjectID)
	} else {
		tasks, err = cliInstance.App.TaskService.GetUserTasks(ctx, user, query)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(cli.NewTaskList(tasks))
}

func parseQuery(cmd *cobra.Command) (taskservice.TaskQuery, error) {
	var query taskservice.TaskQuery

	projectID, _ := cmd.Flags().GetInt("project")
	query.ProjectID = types.ProjectID(projectID)
	query.Overdue, _ = cmd.Flags().GetBool("overdue")

	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		status, err := cli.ParseStatus(raw)
		if err != nil {
			return query, err
		}
		query.Status = status
	}
	if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
		priority, err := cli.ParsePriority(raw)
		if err != nil {
			return query, err
		}
		query.Priority = priority
	}
	return query, nil
}
