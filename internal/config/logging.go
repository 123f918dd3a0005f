package config

import (
	"os"
	"path/filepath"

	"github.com/rshade/pokedex/internal/logging"
)

// ToLoggingConfig converts LoggingConfig to logging.Config.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// ForceFile routes logs to a file, using the default log path when none is
// configured. The interactive browser uses it so log lines never draw over
// the screen.
func (lc *LoggingConfig) ForceFile() {
	if lc.File == "" {
		lc.File = logging.DefaultLogPath()
	}
}

// EnsureLogDir creates the directory holding the configured log file.
func (lc *LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(lc.File), 0o750)
}
