package commands

import (
	"fmt"

	"github.com/jarfernandez/detect-delimiter/internal/fileutil"
	"github.com/spf13/cobra"
)

// detectConfig represents the configuration file structure for the detect command.
type detectConfig struct {
	SampleLines *int     `json:"sample-lines,omitempty" yaml:"sample-lines,omitempty"`
	Encoding    *string  `json:"encoding,omitempty"     yaml:"encoding,omitempty"`
	Expect      *string  `json:"expect,omitempty"       yaml:"expect,omitempty"`
	Concurrency *int     `json:"concurrency,omitempty"  yaml:"concurrency,omitempty"`
	FailFast    *bool    `json:"fail-fast,omitempty"    yaml:"fail-fast,omitempty"`
	Files       []string `json:"files,omitempty"        yaml:"files,omitempty"`
}

func loadDetectConfig(path string) (*detectConfig, error) {
	data, err := fileutil.ReadFileOrStdin(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg detectConfig
	if err := fileutil.DecodeConfig(data, &cfg, path); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// applyDetectConfig copies config values into the flag variables, except for
// flags set explicitly on the command line.
func applyDetectConfig(cmd *cobra.Command, cfg *detectConfig) {
	changed := cmd.Flags().Changed

	if cfg.SampleLines != nil && !changed("sample-lines") {
		sampleLines = *cfg.SampleLines
	}
	if cfg.Encoding != nil && !changed("encoding") {
		encoding = *cfg.Encoding
	}
	if cfg.Expect != nil && !changed("expect") {
		expect = *cfg.Expect
	}
	if cfg.Concurrency != nil && !changed("concurrency") {
		concurrency = *cfg.Concurrency
	}
	if cfg.FailFast != nil && !changed("fail-fast") {
		failFast = *cfg.FailFast
	}
}
