// Package config loads taskdeck configuration from a TOML file with
// sensible defaults.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultListenAddr = "127.0.0.1:8314"
	DefaultDataFile   = "todos.json"
	DefaultSearchFile = "search.json"
	DefaultLogFile    = "taskdeck.log"
	DefaultLogLevel   = "info"
)

// Config holds the full configuration for taskdeck.
type Config struct {
	// ListenAddr is where the in-process mock API binds.
	ListenAddr string `toml:"listen_addr"`
	// DataFile is the JSON file backing the mock API.
	DataFile string `toml:"data_file"`
	// SearchFile mirrors the table's search text across restarts.
	SearchFile string `toml:"search_file"`
	// LogFile receives structured logs; the TUI owns the terminal.
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
	// PageSize must be one of 5, 10 or 20.
	PageSize int `toml:"page_size"`
	// Seed writes sample tasks into an empty data file on startup.
	Seed bool `toml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr: DefaultListenAddr,
		DataFile:   DefaultDataFile,
		SearchFile: DefaultSearchFile,
		LogFile:    DefaultLogFile,
		LogLevel:   DefaultLogLevel,
		PageSize:   10,
		Seed:       true,
	}
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	bs, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(bs, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.PageSize {
	case 5, 10, 20:
	default:
		return errors.New("page_size must be 5, 10 or 20")
	}
	if c.ListenAddr == "" {
		return errors.New("listen_addr must not be empty")
	}
	if c.DataFile == "" {
		return errors.New("data_file must not be empty")
	}
	if c.SearchFile == "" {
		return errors.New("search_file must not be empty")
	}
	if c.LogFile == "" {
		return errors.New("log_file must not be empty")
	}
	return nil
}
