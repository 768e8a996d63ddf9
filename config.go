package skinvault

import (
	"errors"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the optional tool settings read from a TOML file.
type Config struct {
	// Library is the path to the skin library database
	Library string `toml:"library"`

	// BackupDays overrides the backup window, in days
	BackupDays int `toml:"backup_days"`
}

// LoadConfig reads the settings file at path. A missing file is not an
// error; the zero Config applies.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// BackupWindow returns the configured backup window, falling back to
// the default when unset.
func (c Config) BackupWindow() time.Duration {
	if c.BackupDays <= 0 {
		return DefaultBackupWindow
	}
	return time.Duration(c.BackupDays) * 24 * time.Hour
}
