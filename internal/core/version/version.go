// Package version provides information about the build version of the service.
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service" example:"orifice-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit" example:"9f1c2ab"`
	Date    string `json:"date" example:"2026-09-30"`
	Go      string `json:"go" example:"go1.24.4"`
}

// Info returns the build information for the API.
func Info() BuildInfo { return For("orifice-api") }

// For returns the build information stamped with the given service name.
// The version, commit, and date variables are set at build time using -ldflags:
//
//	-X 'github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/version.version=v0.3.0'
//	-X 'github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/version.commit=9f1c2ab'
//	-X 'github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/version.date=2026-09-30'
//
// Without ldflags the module version and vcs revision from the binary are used when present.
func For(service string) BuildInfo {
	bi := BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
	if info, ok := readBuildInfo(); ok {
		if bi.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			bi.Version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "none" && s.Value != "" {
					bi.Commit = shortRev(s.Value)
				}
			case "vcs.time":
				if bi.Date == "unknown" && s.Value != "" {
					bi.Date = s.Value
				}
			}
		}
	}
	return bi
}

func shortRev(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo // seam
)
