package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Format represents the output format for CLI results.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var formats = []Format{FormatText, FormatJSON}

// ParseFormat parses a string into a Format, returning an error for unsupported values.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(formats, f) {
		names := make([]string, len(formats))
		for i, v := range formats {
			names[i] = string(v)
		}
		return "", fmt.Errorf("unsupported output format %q, valid values are: %s", s, strings.Join(names, ", "))
	}
	return f, nil
}

// RenderJSON writes v as indented JSON to w. HTML characters are not escaped.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
