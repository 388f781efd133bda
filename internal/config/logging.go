package config

import (
	"io"
	"path/filepath"

	"github.com/rshade/postview/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`

	// File sends logs to a file instead of stderr when set.
	File string `yaml:"file,omitempty"`
}

// defaultLogFileName is used when a command needs file logging but none is configured.
const defaultLogFileName = "postview.log"

// ToLoggingConfig bridges the config section to logging.Config.
// out is used when no file is configured.
func (lc LoggingConfig) ToLoggingConfig(out io.Writer) logging.Config {
	file := lc.File
	if file != "" {
		if expanded, err := expandHome(file); err == nil {
			file = expanded
		}
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   file,
		Output: out,
	}
}

// WithDefaultFile returns a copy that logs to <config dir>/postview.log when no file is set.
// The interactive TUI uses this so log lines never land on the alternate screen.
func (lc LoggingConfig) WithDefaultFile() LoggingConfig {
	if lc.File != "" {
		return lc
	}
	dir, err := GetConfigDir()
	if err != nil {
		return lc
	}
	lc.File = filepath.Join(dir, defaultLogFileName)
	return lc
}
