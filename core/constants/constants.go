package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Pagination defaults
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// Schedule day window defaults (minutes from midnight)
const (
	DefaultDayWindowStart = 0
	DefaultDayWindowEnd   = 24 * 60
)

// Event types
const (
	EventTypeTask    = "task"
	EventTypeMeeting = "meeting"
	EventTypeRoutine = "routine"
	EventTypeHabit   = "habit"
)

// Asynq task types
const (
	TaskTypeEventReminder = "event:reminder"
	TaskTypeBackupExport  = "backup:export"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)
