package delimiter

import (
	"regexp"
	"slices"

	"github.com/jarfernandez/detect-delimiter/internal/csvparse"
	log "github.com/sirupsen/logrus"
)

// Parser parses text into rows of fields using comma as the field separator.
// A syntax error (unbalanced quotes, stray quote in a bare field) is reported
// through the error return.
type Parser interface {
	TryParse(text string, comma rune) ([][]string, error)
}

// Tier identifies the strategy that produced a Resolution.
type Tier string

const (
	// TierNone means the sample had no candidate delimiter at all.
	TierNone           Tier = "none"
	TierSameOccurrence Tier = "same-occurrence"
	TierValid          Tier = "valid"
	TierMaxOccurrence  Tier = "max-occurrence"
	// TierDefault means every tier was inconclusive.
	TierDefault Tier = "default"
)

// Resolution is the outcome of a detection.
type Resolution struct {
	Delimiter Delimiter
	Tier      Tier
}

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Detector resolves the delimiter of a text sample. A Detector is read-only
// after New and may be shared between goroutines.
type Detector struct {
	sample     string
	lines      []string
	candidates Candidates
	parser     Parser
}

// Option configures a Detector.
type Option func(*Detector)

// WithParser replaces the CSV parser used by the parsing tiers.
func WithParser(p Parser) Option {
	return func(d *Detector) {
		if p != nil {
			d.parser = p
		}
	}
}

// New builds a Detector for an already sanitized sample.
func New(sample string, opts ...Option) *Detector {
	d := &Detector{
		sample:     sample,
		lines:      splitLines(sample),
		candidates: countCandidates(sample),
		parser:     csvparse.Parser{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func splitLines(sample string) []string {
	lines := lineBreaks.Split(sample, -1)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Lines returns the sample split on runs of line break characters.
func (d *Detector) Lines() []string {
	return slices.Clone(d.lines)
}

// Candidates returns the candidate set in Universe order.
func (d *Detector) Candidates() Candidates {
	return slices.Clone(d.candidates)
}

// Find returns the detected delimiter. It never fails: when no tier is
// decisive the Default delimiter is returned.
func (d *Detector) Find() Delimiter {
	return d.Resolve().Delimiter
}

// Resolve returns the detected delimiter along with the tier that chose it.
func (d *Detector) Resolve() Resolution {
	if len(d.candidates) == 0 {
		log.Debugln("No candidate delimiter in sample, using default")
		return Resolution{Delimiter: Default, Tier: TierNone}
	}

	tiers := []struct {
		tier Tier
		find func() (Delimiter, bool)
	}{
		{TierSameOccurrence, d.FindSameOccurrence},
		{TierValid, d.FindValid},
		{TierMaxOccurrence, d.FindMaxOccurrence},
	}

	for _, t := range tiers {
		if delim, ok := t.find(); ok {
			log.Debugf("Delimiter %s resolved by %s tier", delim.Name(), t.tier)
			return Resolution{Delimiter: delim, Tier: t.tier}
		}
		log.Debugf("Tier %s inconclusive", t.tier)
	}

	return Resolution{Delimiter: Default, Tier: TierDefault}
}

// FindSameOccurrence selects the candidates under which every non-empty row
// has the same number of fields.
func (d *Detector) FindSameOccurrence() (Delimiter, bool) {
	return d.selectWith(func(c Candidate) bool {
		rows, err := d.parser.TryParse(d.sample, rune(c.Delimiter))
		if err != nil {
			log.Debugf("Parsing with %s failed: %v", c.Delimiter.Name(), err)
			return false
		}
		return uniformWidth(rows)
	})
}

// FindValid selects the candidates under which the sample parses without a
// syntax error.
func (d *Detector) FindValid() (Delimiter, bool) {
	return d.selectWith(func(c Candidate) bool {
		_, err := d.parser.TryParse(d.sample, rune(c.Delimiter))
		return err == nil
	})
}

// FindMaxOccurrence selects the candidates with the highest occurrence count.
func (d *Detector) FindMaxOccurrence() (Delimiter, bool) {
	maxCount := d.candidates.MaxCount()
	return d.selectWith(func(c Candidate) bool {
		return c.Count == maxCount
	})
}

func (d *Detector) selectWith(pass func(Candidate) bool) (Delimiter, bool) {
	return pick(d.candidates.filter(pass).Delimiters())
}

// pick applies the tie-break shared by all tiers: a single passing delimiter
// wins, otherwise Default wins if it passed, otherwise there is no decision.
func pick(selected []Delimiter) (Delimiter, bool) {
	if len(selected) == 1 {
		return selected[0], true
	}
	if slices.Contains(selected, Default) {
		return Default, true
	}
	return 0, false
}

// uniformWidth reports whether all rows with at least one field share the
// same field count. Rows holding a single empty field are kept.
func uniformWidth(rows [][]string) bool {
	width := -1
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if width == -1 {
			width = len(row)
			continue
		}
		if len(row) != width {
			return false
		}
	}
	return width != -1
}
