// Package logging constructs the application slog.Logger.
//
// Two output formats are supported: a compact console format for terminals
// (colored when stderr is a tty) and JSON for machine consumption. When a log
// directory is configured, records are mirrored to haikufind.log inside it.
package logging
