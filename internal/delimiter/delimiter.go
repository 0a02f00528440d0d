package delimiter

import (
	"fmt"
	"strings"
)

// Delimiter is a field separator character.
type Delimiter rune

const (
	Comma     Delimiter = ','
	Pipe      Delimiter = '|'
	Tab       Delimiter = '\t'
	Semicolon Delimiter = ';'

	// Default is the tie-break favorite and the final fallback.
	Default = Comma
)

// Universe lists every delimiter the detector considers, in scoring order.
var Universe = []Delimiter{Comma, Pipe, Tab, Semicolon}

var names = map[Delimiter]string{
	Comma:     "comma",
	Pipe:      "pipe",
	Tab:       "tab",
	Semicolon: "semicolon",
}

// String returns the delimiter as its literal character.
func (d Delimiter) String() string {
	return string(rune(d))
}

// Name returns a printable name for the delimiter (e.g. "tab").
func (d Delimiter) Name() string {
	if n, ok := names[d]; ok {
		return n
	}
	return fmt.Sprintf("%q", rune(d))
}

// Escaped returns the delimiter in a form safe to print on a single line.
func (d Delimiter) Escaped() string {
	if d == Tab {
		return `\t`
	}
	return d.String()
}

// Valid reports whether d belongs to the Universe.
func (d Delimiter) Valid() bool {
	_, ok := names[d]
	return ok
}

// Parse converts a literal character, the escape sequence \t, or a delimiter
// name into a Delimiter. Values outside the Universe are rejected.
func Parse(s string) (Delimiter, error) {
	switch s {
	case `\t`:
		return Tab, nil
	case "":
		return 0, fmt.Errorf("empty delimiter, valid values are: %s", validValues())
	}

	runes := []rune(s)
	if len(runes) == 1 {
		d := Delimiter(runes[0])
		if d.Valid() {
			return d, nil
		}
	}

	lower := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Universe {
		if names[d] == lower {
			return d, nil
		}
	}

	return 0, fmt.Errorf("unsupported delimiter %q, valid values are: %s", s, validValues())
}

func validValues() string {
	values := make([]string, 0, len(Universe))
	for _, d := range Universe {
		values = append(values, fmt.Sprintf("%s (%s)", d.Escaped(), d.Name()))
	}
	return strings.Join(values, ", ")
}
