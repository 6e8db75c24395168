package config

// Config holds all application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
}

// LoggerConfig contains the settings used to construct a logger.
// The zero value logs to standard output at info level with timestamps
// and without mutual exclusion.
type LoggerConfig struct {
	// Path of the log file. Empty means standard output.
	Path string `mapstructure:"path"`
	// Level is the minimum level name, lower case. Empty means info.
	// Load lower-cases whatever the file holds.
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warning error fatal"`
	// DisableTimestamp turns off the timestamp prefix at construction time.
	DisableTimestamp bool `mapstructure:"disable_timestamp"`
	// ThreadSafe serializes emission with a mutex.
	ThreadSafe bool `mapstructure:"thread_safe"`
}
