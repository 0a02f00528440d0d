package fileutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ConfigFormat is the serialization of a configuration file.
type ConfigFormat string

const (
	ConfigJSON ConfigFormat = "json"
	ConfigYAML ConfigFormat = "yaml"
)

// ConfigFormatOf returns the format of config data, taken from the extension
// of filePath or guessed from the content when reading stdin.
func ConfigFormatOf(data []byte, filePath string) ConfigFormat {
	if filePath == StdinPath {
		if IsYAML(data) {
			return ConfigYAML
		}
		return ConfigJSON
	}
	if HasYAMLExtension(filePath) {
		return ConfigYAML
	}
	return ConfigJSON
}

// DecodeConfig decodes data into v. Unknown keys are rejected so a mistyped
// option fails instead of being ignored. An empty YAML document leaves v as is.
func DecodeConfig(data []byte, v any, filePath string) error {
	switch ConfigFormatOf(data, filePath) {
	case ConfigYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		if dec.More() {
			return errors.New("invalid JSON: unexpected data after top-level value")
		}
	}
	return nil
}
