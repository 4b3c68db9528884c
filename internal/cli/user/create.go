package user

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
)

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long: `Create an active user account. Emails are unique ignoring case.

Examples:
  # Account without a password
  tracker user create --email=alice@example.com

  # Password from stdin
  echo "s3cret" | tracker user create --email=alice@example.com --password=-

  # Quiet mode for bash capture
  USER_ID=$(tracker user create --email=alice@example.com --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("email", "", "Email address (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("password", "", "Password (use - for stdin)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	email, _ := cmd.Flags().GetString("email")
	password, err := readPassword(cmd)
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

	user, err := cliInstance.App.AccountService.CreateUser(ctx, email, password)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewUserView(user))
	}
	formatter.Message("User '%s' created successfully (ID: %d)", user.Email, user.ID)
	return nil
}
