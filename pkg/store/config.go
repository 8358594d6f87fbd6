package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultFileName    = ".journal.json"
	defaultLockTimeout = 5 * time.Second

	// ConfigPathEnv names a directory searched for a .journal config file.
	ConfigPathEnv = "JOURNAL_CONFIG_PATH"
)

// ErrNoJournalPath is returned when no journal file was given and no
// default could be determined.
var ErrNoJournalPath = errors.New("failed to find a journal file")

// Config is the resolved configuration of the journal store.
type Config interface {
	JournalPath() string
	Locking() bool
	AtomicWrites() bool
	LockTimeout() time.Duration
	ConfigFile() string
}

// DefaultPath returns ~/.journal.json. ok is false when the home directory
// can not be discovered.
func DefaultPath() (path string, ok bool) {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, defaultFileName), true
}

// LoadConfig reads .journal.{yaml,json,toml} from $JOURNAL_CONFIG_PATH and
// the working directory, and JOURNAL_* environment variables. A non-empty
// override wins over every other source of the journal path.
func LoadConfig(override string) (Config, error) {
	v := viper.New()
	v.SetDefault("path", "")
	v.SetDefault("lock", true)
	v.SetDefault("atomic", true)
	v.SetDefault("lock_timeout", defaultLockTimeout)
	v.SetConfigName(".journal")
	v.SetEnvPrefix("JOURNAL")
	v.AutomaticEnv()

	if dir := os.Getenv(ConfigPathEnv); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path := override
	if path == "" {
		path = v.GetString("path")
	}
	if path == "" {
		var ok bool
		if path, ok = DefaultPath(); !ok {
			return nil, ErrNoJournalPath
		}
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJournalPath, err)
	}

	return &fileConfig{
		Path:       path,
		Lock:       v.GetBool("lock"),
		Atomic:     v.GetBool("atomic"),
		Timeout:    v.GetDuration("lock_timeout"),
		ConfigUsed: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path       string        `json:"path"`
	Lock       bool          `json:"lock"`
	Atomic     bool          `json:"atomic"`
	Timeout    time.Duration `json:"lock_timeout"`
	ConfigUsed string        `json:"-"`
}

func (f *fileConfig) JournalPath() string {
	return f.Path
}

func (f *fileConfig) Locking() bool {
	return f.Lock
}

func (f *fileConfig) AtomicWrites() bool {
	return f.Atomic
}

func (f *fileConfig) LockTimeout() time.Duration {
	return f.Timeout
}

func (f *fileConfig) ConfigFile() string {
	return f.ConfigUsed
}
