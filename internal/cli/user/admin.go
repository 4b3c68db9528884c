package user

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
)

// AdminCmd returns the user admin subcommand
func AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create or update an administrator account",
		Long: `Make sure an administrator account exists for the given email.

An existing account with that email is promoted to staff and superuser and
gets the new password; otherwise a new account is created. Running it twice
is safe.

Examples:
  echo "s3cret" | tracker user admin --email=admin@example.com --password=-
`,
		RunE: runAdmin,
	}

	// Required flags
	cmd.Flags().String("email", "", "Email address (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("password", "", "Password (use - for stdin)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdmin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	email, _ := cmd.Flags().GetString("email")
	password, err := readPassword(cmd)
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

	user, created, err := cliInstance.App.AccountService.EnsureAdmin(ctx, email, password)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewUserView(user))
	}
	if created {
		formatter.Message("Admin user '%s' created (ID: %d)", user.Email, user.ID)
	} else {
		formatter.Message("Admin user '%s' updated (ID: %d)", user.Email, user.ID)
	}
	return nil
}
