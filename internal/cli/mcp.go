package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/synopsis/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for documentation inference",
	Long: `Start the Model Context Protocol (MCP) server that lets coding assistants
ask what a piece of code's documentation should describe.

The MCP server:
- Provides docs_synopsis, docs_code and docs_progress tools
- Caches results in memory (mcp.cache_size entries, 0 disables)
- Communicates via stdio (standard MCP transport)

Example:
  synopsis mcp`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	rt, err := loadSession()
	if err != nil {
		return err
	}

	indicators, err := rt.cfg.Indicators()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(rt.service, mcp.Options{
		Name:       "synopsis-mcp",
		Version:    Version,
		CacheSize:  rt.cfg.MCP.CacheSize,
		Indicators: indicators,
		Logger:     rt.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer server.Close()

	if err := server.Serve(cmd.Context()); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
