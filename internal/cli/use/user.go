package use

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/config"
)

// UserCmd returns the use user subcommand
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user [email]",
		Short: "Set the acting user for the current shell session",
		Long: `Set the acting user using an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(tracker use user alice@example.com)   # Act as alice
  eval $(tracker use user --clear)             # Clear the user context
  tracker use user --show                      # Show the acting user

The TRACKER_USER environment variable will be set in your current shell
session only. The --as flag on other commands takes precedence over it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseUser,
	}

	cmd.Flags().Bool("clear", false, "Clear the current user context")
	cmd.Flags().Bool("show", false, "Show the current user context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Handle --show flag
	if showFlag {
		if current := os.Getenv(config.EnvUser); current != "" {
			fmt.Fprintf(out, "Acting as %s (from %s)\n", current, config.EnvUser)
			return nil
		}
		fmt.Fprintln(out, "No user context set")
		fmt.Fprintln(out, "Use 'eval $(tracker use user <email>)' to set one")
		return nil
	}

	// Handle --clear flag
	if clearFlag {
		if dryRun {
			fmt.Fprintf(errOut, "Would clear %s\n", config.EnvUser)
			return nil
		}
		fmt.Fprintf(out, "unset %s\n", config.EnvUser)
		fmt.Fprintln(errOut, "Cleared user context")
		return nil
	}

	if len(args) == 0 {
		return &cli.UsageError{Message: "email required\nUsage: eval $(tracker use user <email>)"}
	}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "Error: initialization error: %v\n", err)
		return cli.Reported(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	// Validate the account exists
	user, err := cliInstance.App.AccountService.GetUserByEmail(ctx, args[0])
	if err != nil {
		fmt.Fprintf(errOut, "Error: no account for %s\n", args[0])
		fmt.Fprintln(errOut, "Suggestion: Create it with 'tracker user create --email=<email>'")
		return cli.Reported(err)
	}

	// Output shell export command (to stdout for eval)
	if dryRun {
		fmt.Fprintf(errOut, "Would set %s=%s\n", config.EnvUser, user.Email)
		return nil
	}

	fmt.Fprintf(out, "export %s=%s\n", config.EnvUser, user.Email)
	fmt.Fprintf(errOut, "Now acting as %s (ID: %d)\n", user.Email, user.ID)
	return nil
}
