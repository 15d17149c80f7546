package log

// Level indicates the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace is the most verbose level, used for events which are only interesting when following a single
	// request through the library.
	LevelTrace Level = iota

	// LevelDebug includes fine-grained events useful when debugging the library itself.
	LevelDebug

	// LevelInfo includes messages which highlight library progress at a coarse-grained level.
	LevelInfo

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning

	// LevelError includes error events which may still allow the library to continue running.
	LevelError

	// LevelPanic includes error events which lead to a panic; only used in the most severe of cases.
	LevelPanic
)
