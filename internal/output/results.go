package output

// DetectResult is the envelope for the detection of a single file.
type DetectResult struct {
	File          string         `json:"file"`
	Passed        bool           `json:"passed"`
	Delimiter     string         `json:"delimiter,omitempty"`
	DelimiterName string         `json:"delimiter-name,omitempty"`
	Tier          string         `json:"tier,omitempty"`
	Expected      string         `json:"expected,omitempty"`
	Message       string         `json:"message"`
	Details       *DetectDetails `json:"details,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// DetectDetails holds the sample statistics behind a detection.
type DetectDetails struct {
	SampleLines int             `json:"sample-lines"`
	Candidates  []CandidateInfo `json:"candidates"`
}

// CandidateInfo holds the occurrence count of one candidate delimiter.
type CandidateInfo struct {
	Delimiter string `json:"delimiter"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

// BatchResult is the aggregated result when several files are detected.
type BatchResult struct {
	Passed  bool           `json:"passed"`
	Results []DetectResult `json:"results"`
	Summary Summary        `json:"summary"`
}

// Summary holds counts for a batch.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// VersionResult holds the short version output for JSON mode (--short flag).
type VersionResult struct {
	Version string `json:"version"`
}

// BuildInfoResult holds the full build information for JSON mode.
type BuildInfoResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuiltAt   string `json:"built-at"`
	GoVersion string `json:"go-version"`
	Platform  string `json:"platform"`
}
