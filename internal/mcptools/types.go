package mcptools

import "github.com/chris-regnier/dayshift/internal/ui"

// Out of range date fields roll over in every tool, so month 13 is January
// of the following year and day 0 is the last day of the previous month.

// FormatDateInput is the input schema for the format_date MCP tool.
type FormatDateInput struct {
	Year  int `json:"year" jsonschema-description:"Calendar year"`
	Month int `json:"month" jsonschema-description:"Month of year, 1-12"`
	Day   int `json:"day" jsonschema-description:"Day of month"`
}

// FormatDateOutput is the output schema for the format_date MCP tool.
type FormatDateOutput = ui.DateResult

// AddDaysInput is the input schema for the add_days MCP tool.
type AddDaysInput struct {
	Year  int `json:"year" jsonschema-description:"Calendar year"`
	Month int `json:"month" jsonschema-description:"Month of year, 1-12"`
	Day   int `json:"day" jsonschema-description:"Day of month"`
	Days  int `json:"days" jsonschema-description:"Number of days to add; negative values move backwards"`
}

// AddDaysOutput is the output schema for the add_days MCP tool.
type AddDaysOutput = ui.ShiftResult

// DateRangeInput is the input schema for the date_range MCP tool.
type DateRangeInput struct {
	Year  int `json:"year" jsonschema-description:"Calendar year of the first date"`
	Month int `json:"month" jsonschema-description:"Month of year of the first date, 1-12"`
	Day   int `json:"day" jsonschema-description:"Day of month of the first date"`
	Count int `json:"count,omitempty" jsonschema-description:"Number of dates to return (default 7, max 366)"`
	Step  int `json:"step,omitempty" jsonschema-description:"Days between consecutive dates (default 1)"`
}

// DateRangeOutput is the output schema for the date_range MCP tool.
type DateRangeOutput struct {
	Dates []string `json:"dates"`
}
