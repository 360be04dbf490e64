// Package version reports which gradhash build is running.
//
// Release builds set the variables below with ldflags. Builds made with
// `go install` or `go build` from a checkout fall back to the module version
// and VCS stamps the Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

var (
	// Version is the semantic version, e.g.
	// -ldflags "-X github.com/jmylchreest/gradhash/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = unknown

	// Date is the build or commit time in RFC3339 format.
	Date = unknown
)

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build description, preferring ldflags values over
// embedded build info.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(&info, bi)
	}
	return info
}

// applyBuildInfo fills fields ldflags left at their defaults.
func applyBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// String returns a one-line description for `gradhash version`.
func (i Info) String() string {
	if i.Commit == unknown {
		return fmt.Sprintf("gradhash version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
	}

	commit := shortCommit(i.Commit)
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("gradhash version %s (commit: %s, built: %s, %s, %s)",
		i.Version, commit, i.Date, i.GoVersion, i.Platform)
}

// String describes the running build.
func String() string {
	return GetInfo().String()
}

// Short returns just the version, for cobra's --version.
func Short() string {
	return GetInfo().Version
}

// shortCommit abbreviates a commit hash to eight characters.
func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
