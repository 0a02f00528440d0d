package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jarfernandez/detect-delimiter/cmd/detect-delimiter/commands"
	"github.com/jarfernandez/detect-delimiter/internal/output"
)

func main() {
	commands.Execute()
	os.Exit(run(os.Stdout))
}

// run prints the final status for text output and returns the exit code:
// 0 when no expectation failed, 1 on a failed expectation, 2 on an execution error.
func run(w io.Writer) int {
	text := commands.OutputFmt != output.FormatJSON

	switch commands.Result {
	case commands.ExecutionError:
		return 2
	case commands.ValidationFailed:
		if text {
			fmt.Fprintln(w, commands.FailStyle.Render("Validation failed"))
		}
		return 1
	case commands.ValidationSucceeded:
		if text {
			fmt.Fprintln(w, commands.PassStyle.Render("Validation succeeded"))
		}
	}
	return 0
}
