package config

import "strings"

const (
	defaultWPM             = 150
	defaultStyle           = "conversational"
	defaultOutputDirectory = "output"
	defaultSampleDir       = "wpm-measure"
	defaultReportPath      = "user-context/wpm-analysis.json"
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"

	// DefaultPath is where the generator looks for its config file.
	DefaultPath = "config.json"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		WPM:             defaultWPM,
		DefaultStyle:    defaultStyle,
		OutputDirectory: defaultOutputDirectory,
		SampleDir:       defaultSampleDir,
		ReportPath:      defaultReportPath,
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
	}
}

// normalize trims values and backfills defaults for fields that decoded to
// zero values. Lenient by intent: missing keys never fail a run.
func (c *Config) normalize() {
	c.DefaultStyle = strings.TrimSpace(c.DefaultStyle)
	c.OutputDirectory = strings.TrimSpace(c.OutputDirectory)
	c.SampleDir = strings.TrimSpace(c.SampleDir)
	c.ReportPath = strings.TrimSpace(c.ReportPath)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if c.WPM == 0 {
		c.WPM = defaultWPM
	}
	if c.DefaultStyle == "" {
		c.DefaultStyle = defaultStyle
	}
	if c.OutputDirectory == "" {
		c.OutputDirectory = defaultOutputDirectory
	}
	if c.SampleDir == "" {
		c.SampleDir = defaultSampleDir
	}
	if c.ReportPath == "" {
		c.ReportPath = defaultReportPath
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
}

// StyleAvailable reports whether style appears in the advisory list. An empty
// list accepts everything.
func (c *Config) StyleAvailable(style string) bool {
	if len(c.AvailableStyles) == 0 {
		return true
	}
	for _, candidate := range c.AvailableStyles {
		if strings.EqualFold(strings.TrimSpace(candidate), style) {
			return true
		}
	}
	return false
}
