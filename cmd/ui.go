package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagelift/core/render"
	"github.com/gaurav-prasanna/pagelift/ui"
)

var flagMode string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive form",
	Long: `UI opens a terminal form. In pdf mode (default) enter a URL, then extract
the page, enhance it with AI and generate a PDF. In json mode type a prompt
and convert it to structured JSON.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return ui.Run(cmd.Context(), flagMode, ui.Deps{
			Enhancer:  app.Enhance,
			Converter: app.PromptJSON,
			Renderer:  render.NewPDFRenderer(),
			Writer:    app.Writer,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&flagMode, "mode", ui.ModePDF, "Form to open: pdf or json")
}
