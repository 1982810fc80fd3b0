// Package version exposes the build version injected at link time.
package version

// version is stamped via -ldflags at build time.
var version string

// Value returns the build version, or a placeholder for untagged builds.
func Value() string {
	if version == "" {
		return "v0.0.0"
	}
	return version
}
