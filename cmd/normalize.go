package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagelift/core/normalize"
)

var flagParagraphs bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize HTML or text into clean paragraphs",
	Long: `Normalize reads HTML or plain text from a file (or stdin) and prints it with
tags removed, entities decoded, whitespace collapsed and paragraph breaks kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 1 && args[0] != "-" {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		text := app.Normalizer.Normalize(string(data))
		out := cmd.OutOrStdout()
		if !flagParagraphs {
			_, err = fmt.Fprintln(out, text)
			return err
		}

		paragraphs := normalize.Paragraphs(text, "\n")
		for i, p := range paragraphs {
			if i > 0 {
				fmt.Fprintln(out, strings.Repeat("-", 40))
			}
			fmt.Fprintln(out, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().BoolVar(&flagParagraphs, "paragraphs", false, "Print one paragraph per block with separators")
}
