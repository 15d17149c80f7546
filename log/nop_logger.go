package log

// nopLogger discards all log statements; used in place of a <nil> 'Logger'.
type nopLogger struct{}

func (n nopLogger) Log(_ Level, _ string, _ ...any) {}
