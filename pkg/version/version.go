// Package version exposes the houselist build version.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// devVersion is reported when the binary was built without a release version.
const devVersion = "0.0.0-dev"

// version is set at build time with
// -ldflags "-X github.com/rshade/houselist/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Set via ldflags.
var version = ""

// GetVersion returns the normalized semantic version of the binary, without
// a leading "v". Unset or unparsable build versions report the dev version.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return devVersion
	}
	return v.String()
}

// IsRelease reports whether the binary carries a release (non-prerelease) version.
func IsRelease() bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}
