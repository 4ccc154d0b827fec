// Package logging provides component-scoped logging for recsize.
//
// Basic usage:
//
//	cfg := logging.Config{Level: "info"}
//	if err := logging.Init(cfg); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logger := logging.Get("scanner")
//	logger.Info("scan started", "path", "/tank/data")
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// toCharmLevel converts our Level to charmbracelet/log level.
func (l Level) toCharmLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the default log level (debug, info, warn, error).
	Level string

	// Path is the log file path. Empty uses DefaultLogPath().
	Path string

	// Components maps component names to their log levels,
	// overriding the default level per component.
	Components map[string]string

	// ConsoleLevel enables console output at the specified level.
	// Empty string disables console output (default). When set, logs at
	// this level and above go to stderr.
	ConsoleLevel string
}

// Logger wraps charmbracelet/log with component identification.
type Logger struct {
	file      *log.Logger // Writes to file, or io.Discard before Init.
	console   *log.Logger // Optional, writes to stderr.
	component string
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.file.Debug(msg, args...)
	if l.console != nil {
		l.console.Debug(msg, args...)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.file.Info(msg, args...)
	if l.console != nil {
		l.console.Info(msg, args...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.file.Warn(msg, args...)
	if l.console != nil {
		l.console.Warn(msg, args...)
	}
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.file.Error(msg, args...)
	if l.console != nil {
		l.console.Error(msg, args...)
	}
}

var (
	mu           sync.Mutex
	initialized  bool
	logFile      *os.File
	defaultLevel Level
	compLevels   map[string]Level
	consoleLevel string
	loggers      = make(map[string]*Logger)
)

// DefaultLogPath returns the default log file path in the XDG state dir.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "recsize", "recsize.log")
}

// Init initializes the logging system. It must be called before Get for
// file output to take effect; loggers obtained earlier discard output.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	defaultLevel = level

	compLevels = make(map[string]Level, len(cfg.Components))
	for name, levelStr := range cfg.Components {
		compLevel, err := ParseLevel(levelStr)
		if err != nil {
			return fmt.Errorf("component %q: %w", name, err)
		}
		compLevels[name] = compLevel
	}

	path := cfg.Path
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	consoleLevel = cfg.ConsoleLevel
	initialized = true

	// Rebuild any loggers handed out before Init.
	for component := range loggers {
		loggers[component] = newLogger(component)
	}

	return nil
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	initialized = false
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Get returns the logger for a component, creating it if needed.
func Get(component string) *Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[component]; ok {
		return l
	}
	l := newLogger(component)
	loggers[component] = l
	return l
}

// newLogger builds a component logger from the current global state.
// Caller must hold mu.
func newLogger(component string) *Logger {
	level := defaultLevel
	if compLevel, ok := compLevels[component]; ok {
		level = compLevel
	}

	var fileWriter io.Writer = io.Discard
	if initialized && logFile != nil {
		fileWriter = logFile
	}

	fileLogger := log.NewWithOptions(fileWriter, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          component,
		Level:           level.toCharmLevel(),
	})

	var consoleLogger *log.Logger
	if initialized && consoleLevel != "" {
		if cl, err := ParseLevel(consoleLevel); err == nil {
			consoleLogger = log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      time.Kitchen,
				Prefix:          component,
				Level:           cl.toCharmLevel(),
			})
		}
	}

	return &Logger{
		file:      fileLogger,
		console:   consoleLogger,
		component: component,
	}
}
