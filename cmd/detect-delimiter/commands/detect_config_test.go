package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDetectConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(dir, "detect.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sample-lines: 25\nencoding: latin1\nexpect: \";\"\nconcurrency: 2\nfail-fast: true\nfiles:\n  - a.csv\n  - b.csv\n"), 0600))

		cfg, err := loadDetectConfig(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.SampleLines)
		assert.Equal(t, 25, *cfg.SampleLines)
		assert.Equal(t, "latin1", *cfg.Encoding)
		assert.Equal(t, ";", *cfg.Expect)
		assert.Equal(t, 2, *cfg.Concurrency)
		assert.True(t, *cfg.FailFast)
		assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.Files)
	})

	t.Run("JSON with omitted fields", func(t *testing.T) {
		path := filepath.Join(dir, "detect.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"expect": "tab"}`), 0600))

		cfg, err := loadDetectConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "tab", *cfg.Expect)
		assert.Nil(t, cfg.SampleLines)
		assert.Nil(t, cfg.FailFast)
		assert.Empty(t, cfg.Files)
	})

	t.Run("Unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sample-line: 10\n"), 0600))

		_, err := loadDetectConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
		assert.Contains(t, err.Error(), "sample-line")
	})

	t.Run("Invalid content", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"expect": `), 0600))

		_, err := loadDetectConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestApplyDetectConfig(t *testing.T) {
	lines, enc, exp, conc, ff := 5, "cp1252", "pipe", 3, true
	cfg := &detectConfig{
		SampleLines: &lines,
		Encoding:    &enc,
		Expect:      &exp,
		Concurrency: &conc,
		FailFast:    &ff,
	}

	t.Run("Config fills unset flags", func(t *testing.T) {
		cmd := newDetectCmd()
		applyDetectConfig(cmd, cfg)

		assert.Equal(t, 5, sampleLines)
		assert.Equal(t, "cp1252", encoding)
		assert.Equal(t, "pipe", expect)
		assert.Equal(t, 3, concurrency)
		assert.True(t, failFast)
	})

	t.Run("Explicit flags win", func(t *testing.T) {
		cmd := newDetectCmd()
		require.NoError(t, cmd.Flags().Set("sample-lines", "50"))
		require.NoError(t, cmd.Flags().Set("expect", ";"))
		applyDetectConfig(cmd, cfg)

		assert.Equal(t, 50, sampleLines)
		assert.Equal(t, ";", expect)
		assert.Equal(t, "cp1252", encoding)
	})

	t.Run("Empty config changes nothing", func(t *testing.T) {
		cmd := newDetectCmd()
		applyDetectConfig(cmd, &detectConfig{})

		assert.Equal(t, 100, sampleLines)
		assert.Equal(t, "utf-8", encoding)
		assert.Empty(t, expect)
		assert.False(t, failFast)
	})
}
