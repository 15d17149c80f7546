// Package log exposes the logging hooks used by 'objstore', allowing applications to plug in the logging library of
// their choice.
package log

// Logger is implemented by applications wishing to receive log statements produced by the library.
type Logger interface {
	Log(level Level, format string, args ...any)
}
