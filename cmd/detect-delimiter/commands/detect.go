package commands

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/jarfernandez/detect-delimiter/internal/delimiter"
	"github.com/jarfernandez/detect-delimiter/internal/fileutil"
	"github.com/jarfernandez/detect-delimiter/internal/output"
	"github.com/jarfernandez/detect-delimiter/internal/sample"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	sampleLines int
	encoding    string
	expect      string
	concurrency int
	failFast    bool
	configFile  string
)

var errStopped = errors.New("stopped after first failure")

// detectSettings are the parsed and validated flag values of one run.
type detectSettings struct {
	lines       int
	encoding    sample.Encoding
	expected    delimiter.Delimiter
	hasExpected bool
	concurrency int
	failFast    bool
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [file...]",
		Short: "Detect the delimiter of one or more delimited files",
		Long: `Detect the delimiter of one or more delimited files.

Only the first lines of each file are sampled (100 by default). Candidates found
in the sample are resolved in three steps: the delimiter giving every row the same
number of fields, then the delimiter under which the sample parses without quoting
errors, then the most frequent delimiter. Ties prefer comma, and comma is returned
when nothing is conclusive.

Use "-" to read from stdin. With --expect the command fails when a file resolves to
another delimiter.`,
		Example: `  detect-delimiter detect data.csv
  detect-delimiter detect export.txt --expect ";"
  detect-delimiter detect *.tsv --expect tab -o json
  detect-delimiter detect legacy.csv --encoding latin1 --sample-lines 20
  detect-delimiter detect --config detect.yaml
  cat data.csv | detect-delimiter detect -`,
		Args: cobra.ArbitraryArgs,
		RunE: runDetect,
	}

	cmd.Flags().IntVarP(&sampleLines, "sample-lines", "n", sample.DefaultLines, "Number of leading lines to sample (optional)")
	cmd.Flags().StringVarP(&encoding, "encoding", "e", string(sample.EncodingUTF8), "Input encoding: utf-8, latin1, windows-1252 (optional)")
	cmd.Flags().StringVar(&expect, "expect", "", "Delimiter every file must resolve to, as a character or name (optional)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "Number of files processed in parallel, 0 uses all CPUs (optional)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop after the first file that fails (optional)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file (JSON or YAML, use - for stdin) (optional)")

	return cmd
}

func init() {
	rootCmd.AddCommand(newDetectCmd())
}

func runDetect(cmd *cobra.Command, args []string) error {
	files := args
	if err := checkStdinOnce(files, configFile); err != nil {
		return err
	}
	if configFile != "" {
		cfg, err := loadDetectConfig(configFile)
		if err != nil {
			return err
		}
		applyDetectConfig(cmd, cfg)
		if len(files) == 0 {
			files = cfg.Files
			if err := checkStdinOnce(files, configFile); err != nil {
				return err
			}
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no input files, pass at least one file or - for stdin")
	}

	settings, err := parseDetectSettings()
	if err != nil {
		return err
	}

	log.Debugf("Detecting delimiter of %d files (sample lines: %d, encoding: %s)", len(files), settings.lines, settings.encoding)

	results := detectFiles(cmd.Context(), files, settings)
	for _, r := range results {
		UpdateResult(resultStatus(r, settings))
	}

	return renderDetect(cmd.OutOrStdout(), results, len(files))
}

// checkStdinOnce rejects more than one use of stdin across the input files
// and the config file.
func checkStdinOnce(files []string, config string) error {
	uses := 0
	if config == fileutil.StdinPath {
		uses++
	}
	for _, f := range files {
		if f == fileutil.StdinPath {
			uses++
		}
	}
	if uses > 1 {
		return fmt.Errorf("stdin (%s) can be read only once, got %d uses", fileutil.StdinPath, uses)
	}
	return nil
}

func parseDetectSettings() (detectSettings, error) {
	if sampleLines <= 0 {
		return detectSettings{}, fmt.Errorf("invalid --sample-lines %d, must be positive", sampleLines)
	}
	if concurrency < 0 {
		return detectSettings{}, fmt.Errorf("invalid --concurrency %d, must not be negative", concurrency)
	}

	enc, err := sample.ParseEncoding(encoding)
	if err != nil {
		return detectSettings{}, err
	}

	s := detectSettings{
		lines:       sampleLines,
		encoding:    enc,
		concurrency: concurrency,
		failFast:    failFast,
	}
	if s.concurrency == 0 {
		s.concurrency = runtime.GOMAXPROCS(0)
	}

	if expect != "" {
		d, err := delimiter.Parse(expect)
		if err != nil {
			return detectSettings{}, fmt.Errorf("invalid --expect: %w", err)
		}
		s.expected = d
		s.hasExpected = true
	}

	return s, nil
}

// detectFiles samples and resolves every path with bounded parallelism.
// Results keep the order of paths. With failFast, files not yet started when
// one fails are left out.
func detectFiles(ctx context.Context, paths []string, s detectSettings) []output.DetectResult {
	if ctx == nil {
		ctx = context.Background()
	}

	slots := make([]*output.DetectResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(s.concurrency, len(paths))))

	for i, path := range paths {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			r := detectFile(path, s)
			slots[i] = &r

			if s.failFast && !r.Passed {
				return errStopped
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Debugf("Detection stopped early: %v", err)
	}

	results := make([]output.DetectResult, 0, len(paths))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}

func detectFile(path string, s detectSettings) output.DetectResult {
	text, err := sample.ReadFirstLines(path, s.lines, sample.WithEncoding(s.encoding))
	if err != nil {
		log.Debugf("Sampling %s failed: %v", path, err)
		return output.DetectResult{
			File:    path,
			Passed:  false,
			Message: fmt.Sprintf("detection failed with error: %v", err),
			Error:   err.Error(),
		}
	}

	d := delimiter.New(text)
	res := d.Resolve()

	result := output.DetectResult{
		File:          path,
		Passed:        true,
		Delimiter:     res.Delimiter.String(),
		DelimiterName: res.Delimiter.Name(),
		Tier:          string(res.Tier),
		Details:       detectDetails(d),
	}

	if s.hasExpected {
		result.Expected = s.expected.String()
		result.Passed = res.Delimiter == s.expected
	}

	switch {
	case !result.Passed:
		result.Message = fmt.Sprintf("Delimiter is %s, expected %s", describe(res.Delimiter), describe(s.expected))
	case res.Tier == delimiter.TierNone:
		result.Message = fmt.Sprintf("No candidate delimiter found, using %s", describe(res.Delimiter))
	default:
		result.Message = fmt.Sprintf("Delimiter is %s", describe(res.Delimiter))
	}

	return result
}

func detectDetails(d *delimiter.Detector) *output.DetectDetails {
	cands := d.Candidates()
	infos := make([]output.CandidateInfo, len(cands))
	for i, c := range cands {
		infos[i] = output.CandidateInfo{
			Delimiter: c.Delimiter.String(),
			Name:      c.Delimiter.Name(),
			Count:     c.Count,
		}
	}
	return &output.DetectDetails{
		SampleLines: len(d.Lines()),
		Candidates:  infos,
	}
}

func describe(d delimiter.Delimiter) string {
	return fmt.Sprintf("%s (%s)", d.Name(), d.Escaped())
}

// resultStatus maps a per-file result to a ValidationResult.
func resultStatus(r output.DetectResult, s detectSettings) ValidationResult {
	switch {
	case r.Error != "":
		return ExecutionError
	case !s.hasExpected:
		return ValidationSkipped
	case r.Passed:
		return ValidationSucceeded
	default:
		return ValidationFailed
	}
}
