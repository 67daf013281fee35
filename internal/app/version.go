package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set with ldflags, for example
// -ldflags "-X github.com/heartmarshall/polyglot-backend/internal/app.Version=1.2.0".
// An unset Commit falls back to the VCS revision recorded by the Go toolchain.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line shown in startup logs, /health and
// `polyglot version`.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = shortRevision(s.Value)
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
