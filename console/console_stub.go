//go:build !(js && wasm)

package console

// Stub file for native builds so packages that log to the browser console
// stay testable. The real implementation is in console.go.

// Debug is a no-op in native builds.
func Debug(args ...any) {}

// Log is a no-op in native builds.
func Log(args ...any) {}

// Warn is a no-op in native builds.
func Warn(args ...any) {}

// Error is a no-op in native builds.
func Error(args ...any) {}
