// Package pkglog configures structured logging on top of log/slog.
//
// Records are JSON with "ts", "severity", and "file" keys, tagged with the
// service name and, inside a request, the correlation ID. SetDebug flips the
// shared level once configuration is loaded.
package pkglog
