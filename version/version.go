package version

import "fmt"

// overridden at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "none"
	Date      = "unknown"
	BuiltBy   = "unknown"
	BuildInfo = ""
)

var FullVersion = composeVersion()

func composeVersion() string {
	if BuildInfo != "" {
		return fmt.Sprintf("%s (%s)", Version, BuildInfo)
	}
	return fmt.Sprintf("%s (commit %s, built %s by %s)", Version, Commit, Date, BuiltBy)
}
