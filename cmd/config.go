package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagelift/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := toml.Marshal(config.Effective(appViper))
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		out := cmd.OutOrStdout()
		if used := appViper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "# loaded from %s\n", used)
		}
		_, err = out.Write(data)
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
