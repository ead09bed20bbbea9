package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Config encapsulates the settings shared by the analyzer and generator.
//
// The on-disk representation is the generator's config.json; missing keys
// fall back to repository defaults and unknown keys are ignored. The analyzer
// never requires the file to exist and runs on defaults alone.
type Config struct {
	// WPM is the speaking rate used to size generated chunks.
	WPM int `json:"wpm"`
	// DefaultStyle selects the style prompt when --style is omitted.
	DefaultStyle string `json:"default_style"`
	// AvailableStyles is advisory: styles outside the list warn, not block.
	AvailableStyles []string `json:"available_styles"`
	// OutputDirectory is where generation sessions are created.
	OutputDirectory string `json:"output_directory"`
	// SampleDir is the directory the analyzer scans for mp3 samples.
	SampleDir string `json:"sample_dir"`
	// ReportPath is where the analyzer writes its JSON report.
	ReportPath string `json:"report_path"`
	// LogLevel and LogFormat control slog construction for both CLIs.
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// Load parses and validates the configuration file at path. The file is
// required; a missing file is an error so the generator can refuse to run
// without its config.json.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
