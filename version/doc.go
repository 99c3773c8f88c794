// Package version exposes build-time version information, populated via
// -ldflags and supplemented from the Go build info when available.
package version
