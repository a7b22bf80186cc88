package version

var (
	// Version is the current tool version.
	// It should be populated by the build system (ldflags).
	Version = "v0.0.1"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)
