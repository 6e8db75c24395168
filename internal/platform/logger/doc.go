// Package logger provides leveled line logging for the application.
//
// A Logger writes one line per message to either standard output or a file
// opened in append mode. Each line has the form
//
//	[YYYY-MM-DD HH:MM:SS ][LEVEL]: message
//
// where the timestamp prefix can be toggled at runtime. Messages below the
// configured minimum level are discarded before any lock is taken. When the
// logger is built with thread safety enabled, emission is serialized by a
// mutex; otherwise concurrent use is the caller's responsibility.
package logger
