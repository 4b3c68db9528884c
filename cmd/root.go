// Package cmd assembles the tracker command tree
package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/cli/project"
	"github.com/thenoetrevino/tracker/internal/cli/task"
	"github.com/thenoetrevino/tracker/internal/cli/tutorial"
	"github.com/thenoetrevino/tracker/internal/cli/use"
	"github.com/thenoetrevino/tracker/internal/cli/user"
	"github.com/thenoetrevino/tracker/internal/metrics"
)

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Tracker - projects and tasks, one owner at a time",
		Long: `Tracker keeps projects and their tasks for several users in one database.
Every command acts as a single user and can only see and change that user's
projects and tasks.

Run 'tracker tutorial' for a walkthrough.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("stats", false, "Print service operation counters to stderr when the command finishes")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Message: err.Error()}
	})

	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	executed, err := rootCmd.ExecuteC()

	if showStats, _ := rootCmd.PersistentFlags().GetBool("stats"); showStats {
		if statsErr := printStats(rootCmd.ErrOrStderr()); statsErr != nil {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: reading stats: %v\n", statsErr)
		}
	}

	if err == nil || cli.IsReported(err) {
		return cli.ExitCodeFor(err)
	}

	// Commands print their own errors; what reaches here unreported came
	// from cobra parsing flags and arguments
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	if executed != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Run '%s --help' for usage.\n", executed.CommandPath())
	}
	return cli.ExitUsage
}

func printStats(w io.Writer) error {
	samples, err := metrics.Snapshot()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tOPERATION\tOUTCOME\tCOUNT")
	for _, s := range samples {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\n", s.Entity, s.Operation, s.Outcome, s.Value)
	}
	return tw.Flush()
}
