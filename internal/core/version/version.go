// Package version reports the build the process was linked with
package version

import "runtime"

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service" example:"pnp-api"`
	Version string `json:"version" example:"v0.4.0"`
	Commit  string `json:"commit"  example:"3f2c1ab"`
	Date    string `json:"date"    example:"2025-10-01"`
	Go      string `json:"go"      example:"go1.24.5"`
}

// set with -ldflags "-X github.com/promptandpause/promptandpause-sub003/internal/core/version.version=v0.4.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for service
func Info(service string) BuildInfo {
	if service == "" {
		service = "pnp-api"
	}
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// String is the short form printed by the binaries on startup
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}
