package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/jarfernandez/detect-delimiter/internal/output"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ValidationResult int

const (
	ValidationSkipped   ValidationResult = iota // 0 - nothing was compared against --expect
	ValidationSucceeded                         // 1 - every file matched --expect
	ValidationFailed                            // 2 - at least one file did not match --expect
	ExecutionError                              // 3 - a file could not be sampled or a flag was invalid
)

var Result = ValidationSkipped

var (
	logLevel     string
	outputFormat string
	colorMode    string
)

var colorModes = []string{"auto", "always", "never"}

// OutputFmt holds the parsed output format after PersistentPreRunE.
var OutputFmt output.Format

var rootCmd = &cobra.Command{
	Use:   "detect-delimiter",
	Short: "Detect the field delimiter of delimited text files",
	Long: `Detect the field delimiter of delimited text files (CSV, TSV and the like) from a
sample of their first lines. Candidates are comma, pipe, tab and semicolon; comma
is used when the sample is not conclusive.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %s: %w", logLevel, err)
		}
		log.SetLevel(level)
		log.Debugln("Log level set to", level.String())

		f, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		OutputFmt = f

		if !slices.Contains(colorModes, colorMode) {
			return fmt.Errorf("invalid color mode %q, valid values are: auto, always, never", colorMode)
		}
		initRenderer(colorMode, cmd.OutOrStdout())

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   !isatty.IsTerminal(os.Stderr.Fd()),
	})
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Sets the log level (trace, debug, info, warn, error, fatal, panic) (optional)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json (optional)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Colorize text output: auto, always, never (optional)")
}

// UpdateResult updates the global Result with proper precedence.
// Priority ordering: ValidationSkipped(0) < ValidationSucceeded(1) < ValidationFailed(2) < ExecutionError(3).
func UpdateResult(new ValidationResult) {
	if new > Result {
		Result = new
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("Error executing detect-delimiter: %v", err)
		Result = ExecutionError
	}
}
