package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrUnavailable     ErrorCode = "service_unavailable"

	// Configuration errors
	ErrInvalidConfig    ErrorCode = "invalid_configuration"
	ErrBindFlags        ErrorCode = "bind_flags_failed"
	ErrReadConfig       ErrorCode = "read_config_failed"
	ErrInvalidInterval  ErrorCode = "invalid_interval"
	ErrInvalidThreshold ErrorCode = "invalid_threshold"
	ErrInvalidTimeout   ErrorCode = "invalid_timeout"
	ErrInvalidCommand   ErrorCode = "invalid_suspend_command"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"
	ErrAlreadyRunning ErrorCode = "already_running"

	// Display errors
	ErrDisplayUnavailable ErrorCode = "display_unavailable"
	ErrRenderFailed       ErrorCode = "render_failed"

	// Collection errors
	ErrLoadUnavailable ErrorCode = "load_average_unavailable"
	ErrMixerQuery      ErrorCode = "mixer_query_failed"

	// Escalation errors
	ErrSpawnFailed ErrorCode = "spawn_failed"

	// Application errors
	ErrMainLoop ErrorCode = "main_loop_failed"

	// Operation errors
	ErrTimeout ErrorCode = "operation_timeout"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:           "Internal error occurred",
	ErrInvalidArgument:    "Invalid argument provided",
	ErrUnavailable:        "Service unavailable",
	ErrInvalidConfig:      "Invalid configuration",
	ErrBindFlags:          "Failed to bind flags",
	ErrReadConfig:         "Failed to read config file",
	ErrInvalidInterval:    "Invalid interval value",
	ErrInvalidThreshold:   "Invalid battery threshold",
	ErrInvalidTimeout:     "Invalid suspend timeout",
	ErrInvalidCommand:     "Invalid suspend command",
	ErrInvalidLogLevel:    "Invalid log level",
	ErrInitFailed:         "Initialization failed",
	ErrShutdownFailed:     "Shutdown failed",
	ErrAlreadyRunning:     "Another instance is already running",
	ErrDisplayUnavailable: "Cannot open display",
	ErrRenderFailed:       "Failed to render status",
	ErrLoadUnavailable:    "Load average unavailable",
	ErrMixerQuery:         "Failed to query mixer",
	ErrSpawnFailed:        "Failed to spawn command",
	ErrMainLoop:           "Error in main loop",
	ErrTimeout:            "Operation timed out",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
