package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Injected at build time via ldflags, e.g.
//
//	-X github.com/jarfernandez/detect-delimiter/internal/version.Version=v1.0.0
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// BuildInfo holds all version and build metadata.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the trimmed version string, "dev" when unset.
func Get() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	return v
}

// GetBuildInfo returns the version together with commit, build date, Go
// version and target platform.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Get(),
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the build info as one line per field.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Version:    %s\nCommit:     %s\nBuilt:      %s\nGo version: %s\nPlatform:   %s\n",
		b.Version, b.Commit, b.BuildDate, b.GoVersion, b.Platform)
}
