package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"voicescript/internal/config"
	"voicescript/internal/deps"
	"voicescript/internal/logging"
	"voicescript/internal/media/ffprobe"
	"voicescript/internal/services"
	"voicescript/internal/services/gemini"
	"voicescript/internal/wpm"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wpmcalc",
		Short: "Measure spoken words per minute from audio samples",
		Long: `Transcribe every mp3 file in the wpm-measure directory with Gemini,
measure durations with ffprobe, and write a words-per-minute report to
user-context/wpm-analysis.json.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd)
		},
	}
}

func runAnalysis(cmd *cobra.Command) error {
	cfg := config.Default()

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	apiKey, err := config.ResolveAPIKey()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "wpmcalc", "resolve api key", "", err)
	}
	if err := deps.Verify([]deps.Requirement{deps.FFprobe()}); err != nil {
		return services.Wrap(services.ErrConfiguration, "wpmcalc", "preflight", "", err)
	}

	client := gemini.NewClient(gemini.Config{APIKey: apiKey})
	analyzer := &wpm.Analyzer{
		SampleDir:   cfg.SampleDir,
		Transcriber: client,
		Duration: func(ctx context.Context, path string) (float64, error) {
			result, err := ffprobe.Inspect(ctx, "ffprobe", path)
			if err != nil {
				return 0, err
			}
			return result.DurationSeconds(), nil
		},
		Logger: logger,
	}

	report, err := analyzer.Run(cmd.Context())
	if err != nil {
		return err
	}
	if err := wpm.WriteReport(cfg.ReportPath, report); err != nil {
		return err
	}

	printSummary(cmd, report.Summary)
	fmt.Fprintf(cmd.OutOrStdout(), "Results saved to: %s\n", cfg.ReportPath)
	return nil
}
