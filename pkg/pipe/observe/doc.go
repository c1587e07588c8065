// Package observe provides stage decorators for logging and metrics. A
// decorated stage is a stage itself and fuses like any other; decorators add
// no buffering and perform no I/O of their own.
//
// - Logged: debug log line per message through log/slog
// - Metered: Prometheus counter per stage, boundary and direction
package observe
