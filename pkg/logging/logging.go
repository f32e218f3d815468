// Package logging configures kiln's zerolog logger.
//
// Console output goes to stderr so it never mixes with a dry-run preview on
// stdout. Every run is also appended to a log file under the XDG state home,
// which KILN_LOG_FILE can move or, set to "off", disable.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AppName names the state directory and log file
const AppName = "kiln"

// EnvLogFile overrides the log file location
const EnvLogFile = "KILN_LOG_FILE"

// Options controls where log records go
type Options struct {
	// Verbosity is the count of -v flags
	Verbosity int
	// Console receives human-readable records; nil means os.Stderr
	Console io.Writer
	NoColor bool
	// LogFile is the file records are appended to. Empty selects the
	// default location; "off" disables the file.
	LogFile string
}

// LevelFor maps a -v count to a level: warn, info, debug, then trace
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the global logger
func Setup(opts Options) {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	logPath := resolveLogFile(opts.LogFile)
	var fileErr error
	if logPath != "" {
		var file *os.File
		file, fileErr = openLogFile(logPath)
		if fileErr == nil {
			writers = append(writers, file)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// GetLogger returns a logger tagged with the component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// resolveLogFile picks the log file path; "" means no file
func resolveLogFile(requested string) string {
	if requested == "" {
		requested = os.Getenv(EnvLogFile)
	}
	switch requested {
	case "off":
		return ""
	case "":
		return defaultLogFile()
	default:
		return requested
	}
}

func defaultLogFile() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs the start of an operation at debug level and
// returns a function that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
