// Package version holds the application version.
package version

// Version is the current aiproxy release version.
// Overridden at build time via -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "0.1.0"
