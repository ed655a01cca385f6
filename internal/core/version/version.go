// Package version reports what build of the Floaty backend is running
package version

import (
	"fmt"
	"runtime"
)

// Service is the name reported by the meta endpoints and the logger
const Service = "floaty-api"

// BuildInfo describes the running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Info returns the build information stamped at link time, e.g.
// -ldflags "-X 'floaty/internal/core/version.version=v0.3.0' -X 'floaty/internal/core/version.commit=abcd'"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// String is the one line form used in startup logs
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Service, b.Version, b.Commit, b.Date)
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
