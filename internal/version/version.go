// Package version provides build version information.
package version

var (
	// Version is the semantic version (injected at build time via -ldflags)
	version = "dev"
	// Commit is the git commit hash (injected at build time via -ldflags)
	commit = "none"
	// Date is the build date (injected at build time via -ldflags)
	date = "unknown"
)

// Info is the build information printed by `winspect version`.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Get returns the build information.
func Get() Info {
	return Info{Version: version, Commit: commit, Date: date}
}

// GetVersion returns the version string
func GetVersion() string {
	return version
}

// GetFullVersion returns version with commit and date info
func GetFullVersion() string {
	return version + " (commit: " + commit + ", built: " + date + ")"
}
