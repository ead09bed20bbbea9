package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"voicescript/internal/script"
)

func printPlan(cmd *cobra.Command, plan script.Plan) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Generation Plan")
	tw.AppendRow(table.Row{"Total duration", fmt.Sprintf("%g min", plan.DurationMinutes)})
	tw.AppendRow(table.Row{"Style", plan.Style})
	tw.AppendRow(table.Row{"WPM", plan.WPM})
	tw.AppendRow(table.Row{"Chunks", len(plan.Chunks)})
	if len(plan.Chunks) > 0 {
		tw.AppendRow(table.Row{"Duration per chunk", fmt.Sprintf("%.1f min", plan.Chunks[0].DurationMinutes)})
		tw.AppendRow(table.Row{"Words per chunk", fmt.Sprintf("~%d", plan.Chunks[0].TargetWords)})
	}
	tw.AppendRow(table.Row{"Total words", fmt.Sprintf("~%d", plan.TotalTargetWords())})
	if plan.Topic != "" {
		tw.AppendRow(table.Row{"Topic hint", plan.Topic})
	}
	fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
}

func printCompletion(cmd *cobra.Command, plan script.Plan, results []script.ChunkResult, session script.Session) {
	var totalWords int
	for _, result := range results {
		totalWords += result.ActualWords
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total words generated: %d\n", totalWords)
	fmt.Fprintf(out, "Estimated reading time: %.1f minutes\n", float64(totalWords)/float64(plan.WPM))
	fmt.Fprintf(out, "Output saved to: %s\n", session.Dir)
	fmt.Fprintln(out, "Files created:")
	for _, name := range session.Files {
		fmt.Fprintf(out, "  - %s\n", name)
	}
}
