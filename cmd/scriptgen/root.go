package main

import (
	"time"

	"github.com/spf13/cobra"

	"voicescript/internal/config"
	"voicescript/internal/logging"
	"voicescript/internal/script"
	"voicescript/internal/services"
	"voicescript/internal/services/gemini"
)

type generateOptions struct {
	configPath    string
	duration      float64
	style         string
	chunks        int
	chunkDuration float64
	topic         string
	wpmOverride   int
}

func newRootCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "scriptgen",
		Short: "Generate narration scripts for voice recording",
		Long: `Generate reading scripts of a target length and style with Gemini.
Output is written to a timestamped session directory containing the script
chunks and a metadata record.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultPath, "Configuration file path")
	cmd.Flags().Float64VarP(&opts.duration, "duration", "d", 0, "Target total duration in minutes")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "Text style (conversational, narrative, technical, news_anchor, storytelling, educational, podcast)")
	cmd.Flags().IntVarP(&opts.chunks, "chunks", "c", 1, "Number of separate chunks to generate")
	cmd.Flags().Float64Var(&opts.chunkDuration, "chunk-duration", 0, "Duration per chunk in minutes (alternative to --chunks)")
	cmd.Flags().StringVarP(&opts.topic, "topic", "t", "", "Optional topic hint for content generation")
	cmd.Flags().IntVar(&opts.wpmOverride, "wpm", 0, "Override WPM from config")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "scriptgen", "load config", "", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	wpmRate := cfg.WPM
	if opts.wpmOverride > 0 {
		wpmRate = opts.wpmOverride
	}
	style := cfg.DefaultStyle
	if opts.style != "" {
		style = opts.style
	}
	if !cfg.StyleAvailable(style) {
		logger.Warn("style not in available_styles, using anyway", "style", style)
	}
	if !script.KnownStyle(style) {
		logger.Warn("unknown style, falling back to conversational phrasing", "style", style)
	}

	plan, err := script.BuildPlan(opts.duration, opts.chunks, opts.chunkDuration, wpmRate, style, opts.topic)
	if err != nil {
		return services.Wrap(services.ErrValidation, "scriptgen", "build plan", "", err)
	}

	apiKey, err := config.ResolveAPIKey()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "scriptgen", "resolve api key", "", err)
	}

	printPlan(cmd, plan)

	generator := &script.Generator{
		Client: gemini.NewClient(gemini.Config{APIKey: apiKey}),
		Logger: logger,
	}
	results, err := generator.Run(cmd.Context(), plan)
	if err != nil {
		return err
	}

	session, err := script.SaveSession(cfg.OutputDirectory, plan, results, time.Now())
	if err != nil {
		return err
	}

	printCompletion(cmd, plan, results, session)
	return nil
}
