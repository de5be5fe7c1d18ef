package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/render"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <url>",
	Short: "Print the AI-enhanced content of a web page",
	Long: `Enhance extracts a web page, sends its text to the language model and prints
the normalized reply. On a terminal the result is rendered as styled Markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := app.Enhance.Run(cmd.Context(), args[0], false)
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(enhanceCmd)
}

// printReport renders the report with glamour on a terminal and as plain
// text otherwise.
func printReport(out io.Writer, report *core.Report) error {
	width, ok := terminalWidth(out)
	if !ok {
		data, err := render.NewTextRenderer().Render(report)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	md, err := render.NewMarkdownRenderer().Render(report)
	if err != nil {
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	styled, err := r.Render(string(md))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(out, styled)
	return err
}

// terminalWidth reports whether out is a terminal and its wrap width.
func terminalWidth(out io.Writer) (int, bool) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || width > 100 {
		width = 100
	}
	return width - 4, true
}
