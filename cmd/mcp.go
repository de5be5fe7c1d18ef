package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagelift/mcpserver"
)

var flagPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pagelift tools over MCP",
	Long: `Serve exposes normalize_text, extract_page, enhance_page and prompt_to_json
as MCP tools. It speaks stdio by default, or streamable HTTP when --port is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		srv, err := mcpserver.New(&mcpserver.Ports{
			Normalizer: app.Normalizer,
			Enhancer:   app.Enhance,
			Converter:  app.PromptJSON,
		})
		if err != nil {
			return err
		}
		if flagPort > 0 {
			addr := fmt.Sprintf("127.0.0.1:%d", flagPort)
			app.Log.Info("mcp server listening", "addr", addr)
			return srv.RunHTTP(cmd.Context(), addr)
		}
		app.Log.Debug("mcp server on stdio")
		return srv.Run(cmd.Context())
	},
}

func init() {
	mcpServeCmd.Flags().IntVar(&flagPort, "port", 0, "Serve streamable HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
