package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var promptJSONCmd = &cobra.Command{
	Use:   "prompt-json [text...]",
	Short: "Convert a prompt into structured JSON",
	Long: `Prompt-json asks the language model to restate a prompt as a JSON object
(intent, role, constraints, tags, complexity, ...). The prompt is taken from
the arguments, or from stdin when none are given. A reply that is not valid
JSON is printed as is.`,
	Example: `  pagelift prompt-json "Act as a travel agent and plan 3 days in Rome"
  cat prompt.txt | pagelift prompt-json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading prompt: %w", err)
			}
			text = string(data)
		}

		result, err := app.PromptJSON.Convert(cmd.Context(), text)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			_, err = fmt.Fprintln(out, result.Pretty)
			return err
		}
		_, err = fmt.Fprintf(out, "JSON Output\n\n%s\n", strings.TrimSpace(result.Raw))
		return err
	},
}

func init() {
	rootCmd.AddCommand(promptJSONCmd)
}
