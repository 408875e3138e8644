// Package version exposes build-time version information. Version,
// GitCommit, and BuildTime are meant to be overridden with -ldflags;
// when they are left at their defaults the package falls back to the
// metadata the Go toolchain embeds in the binary.
package version
