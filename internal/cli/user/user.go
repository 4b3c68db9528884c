// Package user holds all cli commands related to accounts
//
// e.g., tracker user ...
package user

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(AdminCmd())
	cmd.AddCommand(WhoamiCmd())

	return cmd
}

// readPassword returns the --password flag value, reading the first line of
// stdin when it is "-"
func readPassword(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "-" {
		return password, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
