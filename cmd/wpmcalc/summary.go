package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"voicescript/internal/wpm"
)

func printSummary(cmd *cobra.Command, summary wpm.Summary) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRow(table.Row{"Files analyzed", summary.FilesAnalyzed})
	tw.AppendRow(table.Row{"Total words", summary.TotalWords})
	tw.AppendRow(table.Row{"Total duration", fmt.Sprintf("%.1fs (%.2f min)", summary.TotalDurationSeconds, summary.TotalDurationSeconds/60)})
	tw.AppendRow(table.Row{"Average WPM", fmt.Sprintf("%.1f", summary.AverageWPM)})
	fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
}
