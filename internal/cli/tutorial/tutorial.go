package tutorial

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Output a workflow guide",
		Long: `Output the essential tracker workflow in markdown.

Designed to be pasted into scripts or handed to agents that drive the CLI
with --json and --quiet. Pass --render to format it for a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			render, _ := cmd.Flags().GetBool("render")
			style, _ := cmd.Flags().GetString("style")
			if err := outputTutorial(cmd.OutOrStdout(), render, style); err != nil {
				return cli.NewFormatter(cmd).Fail(err)
			}
			return nil
		},
	}

	cmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	cmd.Flags().String("style", "dark", "Glamour style used with --render (dark, light, notty)")

	return cmd
}

func outputTutorial(w io.Writer, render bool, style string) error {
	if !render {
		_, err := fmt.Fprint(w, tutorialContent)
		return err
	}

	out, err := glamour.Render(tutorialContent, style)
	if err != nil {
		return fmt.Errorf("failed to render tutorial: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
