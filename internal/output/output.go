// Package output renders batch results for the CLI.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/domainforge/domainforge/internal/core"
)

// Format selects the CLI rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// FormatBatch renders a batch result in the requested format.
func FormatBatch(result *core.BatchResult, format Format) (string, error) {
	switch format {
	case FormatJSON:
		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode result: %w", err)
		}
		return string(raw), nil
	case FormatTable, "":
		return formatTable(result), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func formatTable(result *core.BatchResult) string {
	if result == nil {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Domain", "Status", "Method", "Score", "Grade"})

	for _, r := range result.Available {
		t.AppendRow(resultRow(r, "available"))
	}
	if len(result.Available) > 0 && len(result.Taken) > 0 {
		t.AppendSeparator()
	}
	for _, r := range result.Taken {
		t.AppendRow(resultRow(r, "taken"))
	}

	t.AppendFooter(table.Row{
		"",
		fmt.Sprintf("%d available", len(result.Available)),
		fmt.Sprintf("%d taken", len(result.Taken)),
		"",
		"",
	})

	return t.Render()
}

func resultRow(r *core.AvailabilityResult, status string) table.Row {
	scoreCell := "-"
	gradeCell := "-"
	if r.Quality != nil {
		scoreCell = fmt.Sprintf("%d", r.Quality.Overall)
		gradeCell = r.Quality.Grade
	}
	return table.Row{r.Domain, status, string(r.Method), scoreCell, gradeCell}
}
