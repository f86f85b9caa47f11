// Package version reports build metadata stamped at link time
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Service is the name reported by meta endpoints and ClickHouse client info
const Service = "aidetect-api"

// Info returns the build information
// -ldflags "-X 'aidetect/internal/core/version.version=v1.0.0' -X 'aidetect/internal/core/version.commit=abcd'"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Version returns just the semantic version string
func Version() string { return version }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
