package commands

import (
	"fmt"
	"io"

	"github.com/jarfernandez/detect-delimiter/internal/delimiter"
	"github.com/jarfernandez/detect-delimiter/internal/output"
)

// renderDetect renders detection results according to the current OutputFmt.
// A single requested file renders as one result, anything else as a batch.
func renderDetect(w io.Writer, results []output.DetectResult, requested int) error {
	if OutputFmt == output.FormatJSON {
		if requested == 1 && len(results) == 1 {
			return output.RenderJSON(w, results[0])
		}
		return output.RenderJSON(w, batchResult(results, requested))
	}

	if requested == 1 && len(results) == 1 {
		renderDetectText(w, &results[0])
		return nil
	}

	for i := range results {
		fmt.Fprintln(w, sectionHeader(results[i].File))
		renderDetectText(w, &results[i])
		fmt.Fprintln(w)
	}
	renderSummaryText(w, batchResult(results, requested).Summary, requested)
	return nil
}

func batchResult(results []output.DetectResult, requested int) output.BatchResult {
	summary := summarize(results)
	return output.BatchResult{
		Passed:  summary.Failed == 0 && summary.Errored == 0 && len(results) == requested,
		Results: results,
		Summary: summary,
	}
}

func summarize(results []output.DetectResult) output.Summary {
	s := output.Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Error != "":
			s.Errored++
		case r.Passed:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

func renderDetectText(w io.Writer, r *output.DetectResult) {
	fmt.Fprintf(w, "Detecting delimiter of %s\n", r.File)

	if r.Error != "" {
		fmt.Fprintln(w, statusPrefix(false)+r.Message)
		return
	}

	if d := r.Details; d != nil {
		fmt.Fprintln(w, keyValue("Sampled lines", fmt.Sprint(d.SampleLines)))
		if len(d.Candidates) == 0 {
			fmt.Fprintln(w, dimStyle.Render("No candidate delimiters in sample"))
		} else {
			fmt.Fprintln(w, keyStyle.Render("Candidates:"))
			for _, c := range d.Candidates {
				fmt.Fprintf(w, "  - %s (%s): %d\n", c.Name, escapedDelimiter(c.Delimiter), c.Count)
			}
		}
	}

	fmt.Fprintln(w, keyValue("Resolved by", r.Tier))
	fmt.Fprintln(w, statusPrefix(r.Passed)+r.Message)
}

func renderSummaryText(w io.Writer, s output.Summary, requested int) {
	fmt.Fprintf(w, "%s %d passed, %d failed, %d errored",
		headerStyle.Render(fmt.Sprintf("Detected %d of %d files:", s.Total, requested)),
		s.Passed, s.Failed, s.Errored)
	if skipped := requested - s.Total; skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", skipped)
	}
	fmt.Fprintln(w)
}

func escapedDelimiter(s string) string {
	if d, err := delimiter.Parse(s); err == nil {
		return d.Escaped()
	}
	return s
}
