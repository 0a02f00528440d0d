package commands

import (
	"fmt"
	"io"

	"github.com/jarfernandez/detect-delimiter/internal/output"
	ver "github.com/jarfernandez/detect-delimiter/internal/version"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the detect-delimiter version",
	Long:  `Show the detect-delimiter version and build information.`,
	Example: `  detect-delimiter version
  detect-delimiter version --short
  detect-delimiter version -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runVersion(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("version operation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

func runVersion(w io.Writer) error {
	if versionShort {
		if OutputFmt == output.FormatJSON {
			return output.RenderJSON(w, output.VersionResult{Version: ver.Get()})
		}
		_, err := fmt.Fprintln(w, ver.Get())
		return err
	}

	info := ver.GetBuildInfo()
	if OutputFmt == output.FormatJSON {
		return output.RenderJSON(w, output.BuildInfoResult{
			Version:   info.Version,
			Commit:    info.Commit,
			BuiltAt:   info.BuildDate,
			GoVersion: info.GoVersion,
			Platform:  info.Platform,
		})
	}
	_, err := fmt.Fprint(w, info.String())
	return err
}
