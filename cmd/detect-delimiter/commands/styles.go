package commands

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	cterm "github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
)

// Zero-value styles render plain text until initRenderer runs.
// PassStyle and FailStyle are also used by main.go for the final status line.
var (
	PassStyle lipgloss.Style
	FailStyle lipgloss.Style

	headerStyle lipgloss.Style
	keyStyle    lipgloss.Style
	valueStyle  lipgloss.Style
	dimStyle    lipgloss.Style
)

// termOut is the writer handed to initRenderer, used for width detection.
var termOut io.Writer

// initRenderer configures Lip Gloss styles for out. colorMode is one of
// "auto", "always" or "never".
func initRenderer(colorMode string, out io.Writer) {
	termOut = out
	r := lipgloss.NewRenderer(out)

	switch colorMode {
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "always":
		// NO_COLOR still wins (no-color.org).
		if os.Getenv("NO_COLOR") == "" {
			r.SetColorProfile(termenv.TrueColor)
		}
	}

	PassStyle = r.NewStyle().Foreground(lipgloss.Color("2")) // green
	FailStyle = r.NewStyle().Foreground(lipgloss.Color("1")) // red
	headerStyle = r.NewStyle().Bold(true)
	keyStyle = r.NewStyle().Bold(true)
	valueStyle = r.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	dimStyle = r.NewStyle().Faint(true)
}

const defaultTermWidth = 60

// terminalWidth returns the width of the terminal behind termOut, or
// defaultTermWidth when it is not a TTY.
func terminalWidth() int {
	if f, ok := termOut.(*os.File); ok {
		if w, _, err := cterm.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	return defaultTermWidth
}

// sectionHeader renders a rule introducing one file in a multi-file run:
//
//	── data.csv ──────────────────────────────────────────────
func sectionHeader(name string) string {
	const leftPrefix = "── "
	const rightPrefix = " "

	rightLen := terminalWidth() - len([]rune(leftPrefix)) - len([]rune(name)) - len([]rune(rightPrefix))
	rightLen = max(rightLen, 2)

	return dimStyle.Render(leftPrefix) +
		headerStyle.Render(name) +
		dimStyle.Render(rightPrefix+strings.Repeat("─", rightLen))
}

// statusPrefix returns a colored ✓ or ✗ symbol followed by a space.
func statusPrefix(passed bool) string {
	if passed {
		return PassStyle.Render("✓") + " "
	}
	return FailStyle.Render("✗") + " "
}

// keyValue renders "key: value" with the key bold and the value highlighted.
func keyValue(key, value string) string {
	return keyStyle.Render(key+":") + " " + valueStyle.Render(value)
}
