// Package version reports the build version of proxygrid.
package version

import (
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

const devVersion = "0.0.0-dev"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/proxygrid/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Set by the linker.
var version = ""

// GetVersion returns the normalized semantic version of the binary. It
// falls back to the module version recorded in the build info, then to
// 0.0.0-dev.
func GetVersion() string {
	if v := Normalize(version); v != "" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := Normalize(info.Main.Version); v != "" {
			return v
		}
	}
	return devVersion
}

// Normalize parses v loosely ("v1.2", "1.2.3-rc.1") and returns it in
// canonical major.minor.patch form. Unparseable input yields "".
func Normalize(v string) string {
	if v == "" || v == "(devel)" {
		return ""
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return ""
	}
	return sv.String()
}
