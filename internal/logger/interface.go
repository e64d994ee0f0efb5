package logger

// Logger is the subset of the package logger handed to components that
// take their logger as a dependency.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
}
