// Package logger holds the process-wide zerolog logger.
//
// The prompt hook runs prompter before every prompt, so the default logger
// is silent: nothing reaches the terminal unless --debug is given. Warnings
// and errors can additionally be kept in a rotated file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the log file inside the logs directory.
const LogFileName = "prompter.log"

var (
	// Log is the global logger instance. It discards everything until Init
	// or InitWithFile is called.
	Log = zerolog.Nop()

	// fileWriter is the rotated file output, nil when file logging is off.
	fileWriter *lumberjack.Logger

	command   string
	commandMu sync.RWMutex
)

// LoggingConfig holds configuration for file-based logging.
// This mirrors config.LoggingSettings but is duplicated here to avoid
// an import cycle.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled. Defaults to false:
// a prompt helper should not write to disk unless asked to.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c == nil || c.FileEnabled == nil {
		return false
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// SetCommand records the subcommand being run; it is attached to every
// subsequent entry. Pass "" to clear.
func SetCommand(name string) {
	commandMu.Lock()
	defer commandMu.Unlock()
	command = name
}

func withCommand(event *zerolog.Event) *zerolog.Event {
	commandMu.RLock()
	defer commandMu.RUnlock()
	if command != "" {
		event = event.Str("cmd", command)
	}
	return event
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// Init sets up console-only logging. With debug off the logger stays
// silent; with debug on everything from debug level up goes to stderr.
func Init(debug bool) {
	if !debug {
		Log = zerolog.Nop()
		return
	}
	Log = zerolog.New(consoleWriter()).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

// InitWithFile sets up logging with an optional rotated file under logsDir.
// The file receives info and above (debug and above when debug is set) as
// JSON; stderr only receives output when debug is set. If logsDir is empty
// or cfg disables file logging this behaves like Init.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	if logsDir == "" || !cfg.IsFileEnabled() {
		Init(debug)
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	_ = CloseFileWriter()
	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, LogFileName),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
	}

	level := zerolog.InfoLevel
	var out io.Writer = fileWriter
	if debug {
		level = zerolog.DebugLevel
		out = io.MultiWriter(consoleWriter(), fileWriter)
	}

	Log = zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

// SetOutput points the logger at w at the given level. Tests use it to
// capture entries.
func SetOutput(w io.Writer, level zerolog.Level) {
	Log = zerolog.New(w).Level(level)
}

// CloseFileWriter closes the file writer if it exists.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		return err
	}
	return nil
}

// GetLogFilePath returns the path of the current log file, or "" if file
// logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// Debug starts a debug-level entry.
func Debug() *zerolog.Event {
	return withCommand(Log.Debug())
}

// Info starts an info-level entry.
func Info() *zerolog.Event {
	return withCommand(Log.Info())
}

// Warn starts a warn-level entry.
func Warn() *zerolog.Event {
	return withCommand(Log.Warn())
}

// Error starts an error-level entry.
func Error() *zerolog.Event {
	return withCommand(Log.Error())
}
