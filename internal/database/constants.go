package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultApplicationName tags sessions in pg_stat_activity
	DefaultApplicationName = "mt2web"
)

// Session runtime parameters
const (
	RuntimeParamApplicationName = "application_name"
	RuntimeParamLockTimeout     = "lock_timeout"
)

// Migration Constants
const (
	// MigrationsDir is the directory inside the embedded filesystem holding goose migrations
	MigrationsDir = "migrations"

	// MigrationsDialect is the goose dialect used for all migrations
	MigrationsDialect = "postgres"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToReadVersion     = "failed to read schema version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
