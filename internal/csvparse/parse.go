package csvparse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseError reports that text could not be parsed with the given separator.
type ParseError struct {
	Comma rune
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse with separator %q: %v", e.Comma, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser is the encoding/csv backed parser used for trial parses.
type Parser struct {
	// TrimLeadingSpace ignores leading white space in a field.
	TrimLeadingSpace bool
}

// TryParse parses text with standard quoting rules. Records may have
// different field counts. Blank lines produce no record. Text that contains
// carriage returns but no line feed uses a lone "\r" as record separator.
func (p Parser) TryParse(text string, comma rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(normalizeRowSep(text)))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = p.TrimLeadingSpace

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, &ParseError{Comma: comma, Err: err}
		}
		rows = append(rows, record)
	}
}

// TryParse parses text using a zero-value Parser.
func TryParse(text string, comma rune) ([][]string, error) {
	return Parser{}.TryParse(text, comma)
}

// normalizeRowSep rewrites CR-only line endings to LF, which encoding/csv
// does not recognize on its own.
func normalizeRowSep(text string) string {
	if strings.Contains(text, "\n") || !strings.Contains(text, "\r") {
		return text
	}
	return strings.ReplaceAll(text, "\r", "\n")
}
