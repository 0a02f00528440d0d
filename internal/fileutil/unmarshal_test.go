package fileutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	SampleLines int      `json:"sample-lines" yaml:"sample-lines"`
	Expect      string   `json:"expect"        yaml:"expect"`
	Files       []string `json:"files"         yaml:"files"`
	FailFast    bool     `json:"fail-fast"     yaml:"fail-fast"`
}

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		filePath    string
		want        testConfig
		errContains string
	}{
		{
			name:     "JSON by extension",
			content:  `{"sample-lines": 20, "expect": ";", "files": ["a.csv"], "fail-fast": true}`,
			filePath: "config.json",
			want:     testConfig{SampleLines: 20, Expect: ";", Files: []string{"a.csv"}, FailFast: true},
		},
		{
			name:     "YAML by extension",
			content:  "sample-lines: 5\nexpect: tab\nfiles:\n  - a.tsv\n  - b.tsv\n",
			filePath: "config.yml",
			want:     testConfig{SampleLines: 5, Expect: "tab", Files: []string{"a.tsv", "b.tsv"}},
		},
		{
			name:     "Unknown extension defaults to JSON",
			content:  `{"expect": "pipe"}`,
			filePath: "config.txt",
			want:     testConfig{Expect: "pipe"},
		},
		{
			name:     "Stdin YAML detected by content",
			content:  "expect: comma\n",
			filePath: StdinPath,
			want:     testConfig{Expect: "comma"},
		},
		{
			name:     "Stdin JSON detected by content",
			content:  `{"sample-lines": 7}`,
			filePath: StdinPath,
			want:     testConfig{SampleLines: 7},
		},
		{
			name:        "Invalid JSON",
			content:     `{"expect": ";`,
			filePath:    "config.json",
			errContains: "invalid JSON",
		},
		{
			name:        "Invalid YAML",
			content:     "sample-lines: [oops",
			filePath:    "config.yaml",
			errContains: "invalid YAML",
		},
		{
			name:     "Empty YAML document",
			content:  "",
			filePath: "config.yaml",
			want:     testConfig{},
		},
		{
			name:        "Unknown YAML key",
			content:     "sample-line: 5\n",
			filePath:    "config.yaml",
			errContains: "invalid YAML",
		},
		{
			name:        "Unknown JSON key",
			content:     `{"expected": ";"}`,
			filePath:    "config.json",
			errContains: "invalid JSON",
		},
		{
			name:        "Trailing JSON data",
			content:     `{"expect": ";"} {"expect": ","}`,
			filePath:    "config.json",
			errContains: "unexpected data after top-level value",
		},
		{
			name:        "Type mismatch",
			content:     `{"sample-lines": "many"}`,
			filePath:    "config.json",
			errContains: "invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg testConfig
			err := DecodeConfig([]byte(tt.content), &cfg, tt.filePath)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestConfigFormatOf(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		filePath string
		want     ConfigFormat
	}{
		{"YAML extension", "{}", "detect.yaml", ConfigYAML},
		{"YML extension", "", "detect.yml", ConfigYAML},
		{"JSON extension", "expect: tab", "detect.json", ConfigJSON},
		{"Stdin object", `{"expect": "tab"}`, StdinPath, ConfigJSON},
		{"Stdin mapping", "expect: tab", StdinPath, ConfigYAML},
		{"Stdin empty", "", StdinPath, ConfigJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFormatOf([]byte(tt.data), tt.filePath))
		})
	}
}
