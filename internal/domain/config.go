package domain

// ConfigFileName is the name of the configuration file inside the
// safe-rsync config directory.
const ConfigFileName = "config.toml"

// Config represents the application configuration.
type Config struct {
	Rsync  RsyncConfig  `toml:"rsync"`
	Backup BackupConfig `toml:"backup"`
	Log    LogConfig    `toml:"log"`
}

// RsyncConfig holds settings for the wrapped tool from the [rsync] section.
type RsyncConfig struct {
	Path       string   `toml:"path,omitempty"`        // rsync binary name or path (default: "rsync")
	MinVersion string   `toml:"min_version,omitempty"` // Minimum accepted version (default: "3.2.0")
	ExtraArgs  []string `toml:"extra_args,omitempty"`  // Appended after the fixed flags, before the paths
}

// BackupConfig holds settings for backup naming from the [backup] section.
type BackupConfig struct {
	Prefix string `toml:"prefix,omitempty"` // Backup directory name prefix; the exclusion pattern derives from it
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the built-in defaults, used when no config
// file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Rsync: RsyncConfig{
			Path:       "rsync",
			MinVersion: "3.2.0",
		},
		Backup: BackupConfig{
			Prefix: "000_rsync_backup_",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
