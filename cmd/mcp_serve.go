package cmd

import (
	"context"
	"log"
	"os"

	"github.com/chris-regnier/dayshift/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-serve",
		Short: "Run MCP server on stdio",
		Long: `Starts a Model Context Protocol (MCP) server that exposes date tools
over stdio transport.

Available tools:
  - format_date: Format a year/month/day as YYYY-MM-DD
  - add_days: Shift a date by a signed number of days
  - date_range: List consecutive dates

Example usage in an MCP client config:
  {
    "mcpServers": {
      "dayshift": {
        "command": "/path/to/dayshift",
        "args": ["mcp-serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mcptools.CreateMCPServer()

			// stdout is reserved for the protocol
			log.SetOutput(os.Stderr)
			log.Printf("Starting dayshift MCP server (stdio transport)")

			return server.Run(context.Background(), &mcp.StdioTransport{})
		},
	}
}
