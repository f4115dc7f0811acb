package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"haikufind/internal/catalog"
)

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

func haikuTable(records []catalog.StoredHaiku) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Signature", "Title", "Artist", "First Line", "Status"})
	for _, record := range records {
		tw.AppendRow(table.Row{
			shortSignature(record.Signature),
			record.Haiku.Title,
			record.Haiku.Artist,
			record.Haiku.Lines[0],
			statusLabel(record),
		})
	}
	return tw.Render()
}

func statsTable(stats catalog.Stats) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Metric", "Count"})
	tw.AppendRow(table.Row{"Total", strconv.Itoa(stats.Total)})
	tw.AppendRow(table.Row{"Unused", strconv.Itoa(stats.Unused)})
	tw.AppendRow(table.Row{"Published", strconv.Itoa(stats.Published)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func detailTable(record *catalog.StoredHaiku) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Field", "Value"})
	tw.AppendRow(table.Row{"Signature", record.Signature})
	tw.AppendRow(table.Row{"Title", record.Haiku.Title})
	tw.AppendRow(table.Row{"Artist", record.Haiku.Artist})
	tw.AppendRow(table.Row{"Syllables", fmt.Sprintf("%d-%d-%d",
		record.Haiku.Syllables[0], record.Haiku.Syllables[1], record.Haiku.Syllables[2])})
	tw.AppendRow(table.Row{"Cached", record.CreatedAt.Format(time.RFC3339)})
	tw.AppendRow(table.Row{"Status", statusLabel(*record)})
	if record.Published() {
		tw.AppendRow(table.Row{"Published", record.PublishedAt.Format(time.RFC3339)})
		if record.ExternalID != "" {
			tw.AppendRow(table.Row{"Post ID", record.ExternalID})
		}
	}
	return tw.Render()
}

func settingsTable(rows [][2]string) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Setting", "Value"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}

func statusLabel(record catalog.StoredHaiku) string {
	if record.Published() {
		return "published"
	}
	return "unused"
}
