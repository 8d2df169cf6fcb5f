package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"vidcat/internal/catalog"
	"vidcat/internal/deps"
	"vidcat/internal/facet"
	"vidcat/internal/presets"
)

// column describes one table column. Headers always align left; numeric
// columns right-align their body cells.
type column struct {
	header  string
	numeric bool
}

func renderRecordTable(records []catalog.Record) string {
	columns := []column{
		{header: "Name"},
		{header: "Codec"},
		{header: "Resolution", numeric: true},
		{header: "Class"},
		{header: "FPS", numeric: true},
		{header: "Tags"},
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Name,
			rec.Codec,
			fmt.Sprintf("%dx%d", rec.Width, rec.Height),
			facet.ResolutionClass(rec.Height),
			rec.FPS,
			rec.Tags,
		})
	}
	return renderTable(columns, rows)
}

func renderPresetTable(items []presets.Preset) string {
	columns := []column{
		{header: "Name"},
		{header: "And"},
		{header: "Or"},
		{header: "Not"},
		{header: "Untagged"},
	}
	rows := make([][]string, 0, len(items))
	for _, preset := range items {
		rows = append(rows, []string{
			preset.Name,
			strings.Join(preset.And, ", "),
			strings.Join(preset.Or, ", "),
			strings.Join(preset.Not, ", "),
			yesNo(preset.UntaggedOnly),
		})
	}
	return renderTable(columns, rows)
}

func renderDepsTable(statuses []deps.Status) string {
	columns := []column{
		{header: "Name"},
		{header: "Command"},
		{header: "Status"},
		{header: "Purpose"},
	}
	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		state := "ok"
		if !status.Available {
			state = status.Detail
		}
		rows = append(rows, []string{status.Name, status.Command, state, status.Description})
	}
	return renderTable(columns, rows)
}

func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.header
		align := text.AlignLeft
		if col.numeric {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
