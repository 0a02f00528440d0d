package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMain renders plain text for every test in the package.
func TestMain(m *testing.M) {
	initRenderer("never", os.Stdout)
	os.Exit(m.Run())
}

func TestInitRenderer(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		noColor   string
		wantColor bool
	}{
		{name: "Never", mode: "never", wantColor: false},
		{name: "Auto on non TTY", mode: "auto", wantColor: false},
		{name: "Always", mode: "always", wantColor: true},
		{name: "Always with NO_COLOR", mode: "always", noColor: "1", wantColor: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Cleanup(func() { initRenderer("never", os.Stdout) })

			var buf bytes.Buffer
			initRenderer(tt.mode, &buf)

			rendered := PassStyle.Render("hello")
			assert.Equal(t, tt.wantColor, strings.Contains(rendered, "\x1b["))
			assert.Contains(t, rendered, "hello")
		})
	}
}

func TestStatusPrefix(t *testing.T) {
	assert.Equal(t, "✓ ", statusPrefix(true))
	assert.Equal(t, "✗ ", statusPrefix(false))
}

func TestKeyValue(t *testing.T) {
	assert.Equal(t, "Resolved by: valid", keyValue("Resolved by", "valid"))
}

func TestSectionHeader(t *testing.T) {
	t.Cleanup(func() { initRenderer("never", os.Stdout) })
	initRenderer("never", &bytes.Buffer{})

	t.Run("Fills the default width", func(t *testing.T) {
		header := sectionHeader("data.csv")
		assert.True(t, strings.HasPrefix(header, "── data.csv ─"))
		assert.Equal(t, defaultTermWidth, len([]rune(header)))
	})

	t.Run("Long names keep a short rule", func(t *testing.T) {
		name := strings.Repeat("x", 80)
		header := sectionHeader(name)
		assert.True(t, strings.HasSuffix(header, name+" ──"))
	})
}

func TestTerminalWidth_NonFile(t *testing.T) {
	t.Cleanup(func() { initRenderer("never", os.Stdout) })

	var buf bytes.Buffer
	initRenderer("never", &buf)
	assert.Equal(t, defaultTermWidth, terminalWidth())
}
