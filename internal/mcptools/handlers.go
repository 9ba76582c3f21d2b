package mcptools

import (
	"context"
	"time"

	"github.com/chris-regnier/dayshift/dates"
	"github.com/chris-regnier/dayshift/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultRangeCount = 7
	maxRangeCount     = 366
)

func toTime(year, month, day int) time.Time {
	return dates.Fields{Year: year, Month: month, Day: day}.Time(time.UTC)
}

// FormatDateHandler returns the handler function for the format_date MCP tool.
func FormatDateHandler() func(ctx context.Context, req *mcp.CallToolRequest, input FormatDateInput) (*mcp.CallToolResult, FormatDateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FormatDateInput) (*mcp.CallToolResult, FormatDateOutput, error) {
		return nil, ui.ToDateResult(toTime(input.Year, input.Month, input.Day)), nil
	}
}

// AddDaysHandler returns the handler function for the add_days MCP tool.
func AddDaysHandler() func(ctx context.Context, req *mcp.CallToolRequest, input AddDaysInput) (*mcp.CallToolResult, AddDaysOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddDaysInput) (*mcp.CallToolResult, AddDaysOutput, error) {
		from := toTime(input.Year, input.Month, input.Day)
		to := dates.AddDays(from, input.Days)
		return nil, AddDaysOutput{
			From: ui.ToDateResult(from),
			Days: input.Days,
			To:   ui.ToDateResult(to),
		}, nil
	}
}

// DateRangeHandler returns the handler function for the date_range MCP tool.
func DateRangeHandler() func(ctx context.Context, req *mcp.CallToolRequest, input DateRangeInput) (*mcp.CallToolResult, DateRangeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DateRangeInput) (*mcp.CallToolResult, DateRangeOutput, error) {
		count := input.Count
		if count <= 0 {
			count = defaultRangeCount
		}
		count = min(count, maxRangeCount)

		step := input.Step
		if step == 0 {
			step = 1
		}

		out := DateRangeOutput{Dates: []string{}}
		for _, t := range dates.Range(toTime(input.Year, input.Month, input.Day), count, step) {
			out.Dates = append(out.Dates, dates.FormatDate(t))
		}
		return nil, out, nil
	}
}
