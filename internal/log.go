package internal

import (
	"log"
	"os"
)

// LogLevel represents different logging verbosity levels.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Logger provides leveled logging over the stdlib logger.
type Logger struct {
	level LogLevel
}

// NewLogger creates a new logger with the specified level.
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level}
}

// NewDefaultLogger creates a logger based on the LOG_LEVEL environment variable.
func NewDefaultLogger() *Logger {
	level := LogLevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		level = LogLevelError
	case "WARN":
		level = LogLevelWarn
	case "INFO":
		level = LogLevelInfo
	case "DEBUG":
		level = LogLevelDebug
	}
	return &Logger{level: level}
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LogLevelError {
		log.Printf("[ERROR] "+format, args...)
	}
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogLevelWarn {
		log.Printf("[WARN] "+format, args...)
	}
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

// Debug logs debug messages.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// StatsObserver adapts the logger to the statistics core's diagnostic
// callback. Bound at wiring time; debug level keeps it silent in
// production.
func (l *Logger) StatsObserver() func(op string, n int, result float64) {
	return func(op string, n int, result float64) {
		l.Debug("stats %s over %d values = %v", op, n, result)
	}
}
