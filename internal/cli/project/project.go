// Package project holds all cli commands related to projects
//
// e.g., tracker project ...
package project

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/types"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(TreeCmd())

	return cmd
}

// projectIDArg reads the project id from the first positional argument or,
// failing that, the --id flag
func projectIDArg(cmd *cobra.Command, args []string) (types.ProjectID, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		id, _ := cmd.Flags().GetInt("id")
		raw = strconv.Itoa(id)
	}
	id, err := cli.ParseID("project", raw)
	return types.ProjectID(id), err
}
