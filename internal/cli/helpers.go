package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/user"
)

// AddOutputFlags registers the agent-friendly flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddUserFlag registers --as, the email of the account a command acts for
func AddUserFlag(cmd *cobra.Command) {
	cmd.Flags().String("as", "", "Email of the acting user (defaults to user.email in the config, then the OS user)")
}

// ActingEmail picks the acting user's email: --as, then the configured
// user.email (which TRACKER_USER overrides), then the OS user at localhost
func ActingEmail(cmd *cobra.Command, c *CLI) string {
	if as, _ := cmd.Flags().GetString("as"); strings.TrimSpace(as) != "" {
		return as
	}
	if c.Config != nil && c.Config.User.Email != "" {
		return c.Config.User.Email
	}
	return user.LocalEmail()
}

// ResolveUser loads the acting user
func ResolveUser(ctx context.Context, cmd *cobra.Command, c *CLI) (*models.User, error) {
	return c.App.AccountService.GetUserByEmail(ctx, ActingEmail(cmd, c))
}

// ParseID parses a positive integer id given on the command line
func ParseID(what, s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, &UsageError{Message: fmt.Sprintf("invalid %s ID: %s", what, s)}
	}
	return id, nil
}

// priorityNames maps accepted priority names to their value
var priorityNames = map[string]int{
	"very-low":  models.PriorityVeryLow,
	"trivial":   models.PriorityVeryLow,
	"low":       models.PriorityLow,
	"medium":    models.PriorityMedium,
	"high":      models.PriorityHigh,
	"very-high": models.PriorityVeryHigh,
	"critical":  models.PriorityVeryHigh,
}

// ParsePriority accepts a priority name or number. Numbers are passed through
// unchecked so the service reports out-of-range values.
func ParsePriority(priority string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(priority))
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	id, ok := priorityNames[strings.ReplaceAll(s, "_", "-")]
	if !ok {
		return 0, &UsageError{Message: fmt.Sprintf(
			"invalid priority '%s' (must be 1-5 or: very-low, low, medium, high, very-high)", priority)}
	}
	return id, nil
}

// ParseStatus accepts a status value (new, in_progress, done); in-progress is
// allowed as a spelling of in_progress
func ParseStatus(status string) (models.TaskStatus, error) {
	s := models.TaskStatus(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), "-", "_"))
	if !s.Valid() {
		return "", &UsageError{Message: fmt.Sprintf(
			"invalid status '%s' (must be: new, in_progress, done)", status)}
	}
	return s, nil
}

// deadlineLayouts are tried in order; all but RFC 3339 are read in loc
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDeadline reads an RFC 3339 timestamp, a local "2006-01-02 15:04" time,
// or a bare date meaning the end of that day in loc
func ParseDeadline(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if d, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, loc), nil
	}
	return time.Time{}, &UsageError{Message: fmt.Sprintf(
		"invalid deadline '%s' (use YYYY-MM-DD, 'YYYY-MM-DD HH:MM' or RFC 3339)", s)}
}
