package delimiter

import "strings"

// Candidate is a delimiter observed in the sample together with its raw
// occurrence count across the whole sample text.
type Candidate struct {
	Delimiter Delimiter
	Count     int
}

// Candidates is an ordered view of the candidate set. Order follows Universe.
type Candidates []Candidate

// countCandidates counts literal occurrences of every Universe delimiter in
// sample and returns the ordered candidate set, dropping zero counts.
func countCandidates(sample string) Candidates {
	pairs := make([]Candidate, 0, len(Universe))
	for _, d := range Universe {
		pairs = append(pairs, Candidate{Delimiter: d, Count: strings.Count(sample, d.String())})
	}
	return newCandidates(pairs).filter(func(c Candidate) bool { return c.Count > 0 })
}

// newCandidates builds an order-preserving mapping from a sequence of pairs.
// A repeated delimiter keeps its first position and takes the last count.
func newCandidates(pairs []Candidate) Candidates {
	index := make(map[Delimiter]int, len(pairs))
	out := make(Candidates, 0, len(pairs))
	for _, p := range pairs {
		if i, ok := index[p.Delimiter]; ok {
			out[i].Count = p.Count
			continue
		}
		index[p.Delimiter] = len(out)
		out = append(out, p)
	}
	return out
}

func (c Candidates) filter(keep func(Candidate) bool) Candidates {
	out := make(Candidates, 0, len(c))
	for _, cand := range c {
		if keep(cand) {
			out = append(out, cand)
		}
	}
	return out
}

// Delimiters returns the candidate delimiters in order.
func (c Candidates) Delimiters() []Delimiter {
	out := make([]Delimiter, len(c))
	for i, cand := range c {
		out[i] = cand.Delimiter
	}
	return out
}

// Count returns the occurrence count of d, or 0 if d is not a candidate.
func (c Candidates) Count(d Delimiter) int {
	for _, cand := range c {
		if cand.Delimiter == d {
			return cand.Count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count in the set.
func (c Candidates) MaxCount() int {
	maxCount := 0
	for _, cand := range c {
		maxCount = max(maxCount, cand.Count)
	}
	return maxCount
}
