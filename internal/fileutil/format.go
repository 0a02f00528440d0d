package fileutil

import (
	"bytes"
	"strings"
)

// HasYAMLExtension checks if a file path has a YAML extension (.yaml or .yml)
func HasYAMLExtension(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// IsYAML guesses the format of config data read from stdin. Anything that does
// not start like a JSON document is treated as YAML; empty data is JSON.
func IsYAML(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return false
	}
	return trimmed[0] != '{' && trimmed[0] != '['
}
