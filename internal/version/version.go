// Package version provides version information for pageview.
package version

import "runtime/debug"

// Version is the release version, set at build time with -ldflags.
var Version = "development"

// Commit is the git commit hash, set at build time with -ldflags. When left
// unset the VCS revision stamped by the Go toolchain is used.
var Commit = "unknown"

// String returns the full version string including the commit hash if available.
func String() string {
	commit := Commit
	if commit == "unknown" {
		commit = vcsRevision(debug.ReadBuildInfo)
	}
	if commit != "unknown" {
		return Version + "+" + commit
	}
	return Version
}

func vcsRevision(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 7 {
				return s.Value[:7]
			}
			return s.Value
		}
	}
	return "unknown"
}
