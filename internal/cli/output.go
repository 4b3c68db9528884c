package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

// NewFormatter builds a formatter from the command's --json and --quiet flags,
// writing to the command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Human is implemented by values that know how to print themselves for people
type Human interface {
	WriteHuman(w io.Writer)
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		switch v := data.(type) {
		case interface{ GetID() int }:
			_, err := fmt.Fprintf(f.stdout(), "%d\n", v.GetID())
			return err
		case interface{ GetIDs() []int }:
			for _, id := range v.GetIDs() {
				if _, err := fmt.Fprintf(f.stdout(), "%d\n", id); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Message prints a line for people; JSON and quiet modes stay silent
func (f *OutputFormatter) Message(format string, args ...any) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Fprintf(f.stdout(), format+"\n", args...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.stdout()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.stderr(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns it marked as
// reported so the command can hand it back to cobra
func (f *OutputFormatter) Fail(err error) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), errorMessage(err), suggestionFor(err)); fmtErr != nil {
		return Reported(errors.Join(err, fmtErr))
	}
	return Reported(err)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	if h, ok := data.(Human); ok {
		h.WriteHuman(f.stdout())
		return nil
	}
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}

func errorMessage(err error) string {
	var invalid *models.ValidationError
	if errors.As(err, &invalid) {
		return invalid.Message
	}
	return err.Error()
}

func suggestionFor(err error) string {
	switch models.KindOf(err) {
	case models.KindPermissionDenied:
		return "Pass --as with the email of the owning user"
	case models.KindNotFound:
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) && notFound.Model == "User" {
			return "Create the account with 'tracker user create --email=<email>'"
		}
	}
	return ""
}
