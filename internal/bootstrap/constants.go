package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting BrandishPet"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// =============================================================================
// Storage and Catalog
// =============================================================================

const (
	LogMsgStorageOpened = "Storage backend opened"
	LogMsgCatalogLoaded = "Item catalog loaded"

	ErrFmtUnknownBackend = "unknown storage backend %q"
	ErrFmtOpenStorage    = "open %s storage: %w"
	ErrMsgLoadCatalog    = "failed to load item catalog"
	ErrMsgCreateManager  = "failed to create pet manager"
	ErrMsgCreateDataDir  = "failed to create data directory"
)

// StoragePingTimeout bounds the connectivity check done while opening a backend
const StoragePingTimeout = 5 * time.Second

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgPetShutdownFailed    = "Saving pets on shutdown failed"
	LogMsgStorageCloseFailed   = "Closing storage failed"
	LogMsgShutdownComplete     = "Shutdown complete"
)
