// Package config handles XDG configuration directory and file paths.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "worktrack"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// EnvFile is the optional dotenv file inside the config directory.
	EnvFile = "worktrack.env"

	// DefaultSyncList is the Google Tasks list that receives exported deadlines.
	DefaultSyncList = "worktrack"

	// DefaultSyncRate is the default number of Google API requests per second.
	DefaultSyncRate = 5.0
)

// Environment keys.
const (
	EnvDataDir  = "WORKTRACK_DATA_DIR"
	EnvSyncList = "WORKTRACK_SYNC_LIST"
	EnvSyncRate = "WORKTRACK_SYNC_RATE"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataDir holds the task, category and status files.
	// Empty means Dir.
	DataDir string

	// SyncList is the Google Tasks list title used by sync.
	SyncList string

	// SyncRate limits Google API requests per second.
	SyncRate float64

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/worktrack or $HOME/.config/worktrack.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      dir,
		SyncList: DefaultSyncList,
		SyncRate: DefaultSyncRate,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// LoadEnv applies settings from the dotenv file in the config directory,
// then from the process environment, which wins. A missing file is not an error.
// The process environment is never modified.
func (c *Config) LoadEnv() error {
	values := map[string]string{}
	if _, err := os.Stat(c.EnvPath()); err == nil {
		fileValues, err := godotenv.Read(c.EnvPath())
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFile, err)
		}
		values = fileValues
	}
	for _, key := range []string{EnvDataDir, EnvSyncList, EnvSyncRate} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	if v := strings.TrimSpace(values[EnvDataDir]); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(values[EnvSyncList]); v != "" {
		c.SyncList = v
	}
	if v := strings.TrimSpace(values[EnvSyncRate]); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			return fmt.Errorf("invalid %s: %q", EnvSyncRate, v)
		}
		c.SyncRate = rate
	}
	return nil
}

// EnvPath returns the path to the dotenv file.
func (c *Config) EnvPath() string {
	return filepath.Join(c.Dir, EnvFile)
}

// DataPath returns the directory holding the persisted collections.
func (c *Config) DataPath() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return c.Dir
}

// Logger returns a debug logger writing to w, or a discarding logger
// unless Debug is set.
func (c *Config) Logger(w io.Writer) *log.Logger {
	if !c.Debug || w == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "debug: ", 0)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
