// Package version reports build metadata for biofx.
//
// Version, Commit and Date are normally injected at build time:
//
//	-ldflags "-X biofx/internal/version.Version=v1.0.0 -X biofx/internal/version.Commit=abc123"
//
// Without them the module version and VCS revision from debug.ReadBuildInfo
// are used.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Get returns the version string, preferring the compile-time value.
func Get() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the VCS revision, preferring the compile-time value.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// Full formats version, short commit and build date for --version output.
func Full() string {
	commit := GetCommit()
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Get(), commit, Date)
}
