package journal

import "codeberg.org/mutker/dwm-statusbar/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("journal_invalid_db_path")

	// Schema Errors
	ErrSchemaInitFailed       = errors.ErrorCode("journal_schema_init_failed")
	ErrSchemaValidationFailed = errors.ErrorCode("journal_schema_validation_failed")

	// Storage Errors
	ErrStorageInit  = errors.ErrInitFailed
	ErrStorageClose = errors.ErrShutdownFailed
	ErrWriteFailed  = errors.ErrorCode("journal_write_failed")

	// Record Errors
	ErrInvalidEvent     = errors.ErrorCode("journal_invalid_event")
	ErrOperationTimeout = errors.ErrTimeout
)
