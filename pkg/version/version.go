package version

import (
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set at build time with -ldflags
var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the release tag, branch or VCS revision, in that order
// of preference
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "dev"
}

// Map returns version metadata for the named executable
func Map(execName string) map[string]string {
	metadata := map[string]string{
		"name":     execName,
		"version":  Version(),
		"compiler": runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Path != "" {
			metadata["source"] = info.Main.Path
		}
		var goos, goarch string
		for _, s := range info.Settings {
			switch s.Key {
			case "GOOS":
				goos = s.Value
			case "GOARCH":
				goarch = s.Value
			}
		}
		if goos != "" && goarch != "" {
			metadata["platform"] = goos + "/" + goarch
		}
	}
	return metadata
}
