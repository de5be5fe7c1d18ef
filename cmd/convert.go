package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagelift/core/output"
	"github.com/gaurav-prasanna/pagelift/core/render"
)

// Flag variables.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagText      bool
	flagRaw       bool
	flagOut       string
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <url>",
	Short: "Enhance a web page and write it in the chosen format",
	Long: `Convert fetches a web page, extracts its main text, sends it to the language
model for enhancement, normalizes the reply into paragraphs and writes it as
PDF, Markdown, JSON or plain text.

Examples:
  pagelift convert https://example.com --pdf
  pagelift convert https://example.com --markdown --output_dir ./out
  pagelift convert https://example.com --pdf --out enhanced_content
  pagelift convert https://example.com --text --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the report as JSON")
	convertCmd.Flags().BoolVar(&flagText, "text", false, "Output plain text")

	convertCmd.Flags().BoolVar(&flagRaw, "raw", false, "Skip the language model and render the extracted text")
	convertCmd.Flags().StringVar(&flagOut, "out", "", "Output file name (default: derived from the URL)")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: output.dir or the current directory)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	format, err := selectFormat(flagPDF, flagMarkdown, flagJSON, flagText)
	if err != nil {
		return err
	}
	renderer, err := app.Renderer(format)
	if err != nil {
		return err
	}

	writer := app.Writer
	if flagOutputDir != "" {
		if writer, err = output.New(flagOutputDir); err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}

	report, err := app.Enhance.Run(cmd.Context(), rawURL, flagRaw)
	if err != nil {
		return err
	}

	data, err := renderer.Render(report)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.Write(flagOut, rawURL, data, renderer.Extension())
	if err != nil {
		return err
	}
	app.Log.Info("report written", "path", path, "format", format, "paragraphs", len(report.Paragraphs))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// selectFormat checks that exactly one output format is chosen and
// returns its name.
func selectFormat(pdf, markdown, json, text bool) (string, error) {
	var formats []string
	if pdf {
		formats = append(formats, render.FormatPDF)
	}
	if markdown {
		formats = append(formats, render.FormatMarkdown)
	}
	if json {
		formats = append(formats, render.FormatJSON)
	}
	if text {
		formats = append(formats, render.FormatText)
	}

	switch len(formats) {
	case 0:
		return "", fmt.Errorf("exactly one output format is required: --pdf, --markdown, --json, or --text")
	case 1:
		return formats[0], nil
	default:
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(formats))
	}
}
