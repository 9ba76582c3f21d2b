package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewDatesMCPServer creates an in-memory MCP server exposing date tools.
// Returns the server and a client transport for connecting to it.
func NewDatesMCPServer() (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer()

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered date tools.
func CreateMCPServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dayshift",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_date",
		Description: "Format a calendar date as YYYY-MM-DD",
	}, FormatDateHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_days",
		Description: "Shift a calendar date by a signed number of days",
	}, AddDaysHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "date_range",
		Description: "List consecutive dates starting at a calendar date",
	}, DateRangeHandler())

	return server
}
