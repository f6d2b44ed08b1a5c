package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ANSI color codes for terminal output
const (
	colorRed    = "\033[97;41m" // White text on red background
	colorGreen  = "\033[97;42m" // White text on green background
	colorYellow = "\033[90;43m" // Black text on yellow background
	colorBlue   = "\033[97;44m" // White text on blue background
	colorReset  = "\033[0m"
)

// Log levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelWeights = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Logger is a leveled logger that writes to a rotated file and stdout.
type Logger struct {
	*log.Logger
	minLevel int
	writer   *lumberjack.Logger
}

// NewLogger creates a logger writing to config.File with rotation.
func NewLogger(config *Config) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(config.File), 0755); err != nil {
		return nil, err
	}

	writer := &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   true,
	}

	minLevel, ok := levelWeights[config.Level]
	if !ok {
		minLevel = levelWeights[LevelInfo]
	}

	return &Logger{
		Logger:   log.New(io.MultiWriter(writer, os.Stdout), "", log.LstdFlags),
		minLevel: minLevel,
		writer:   writer,
	}, nil
}

func (l *Logger) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

func (l *Logger) logf(level, prefix, format string, v ...interface{}) {
	if levelWeights[level] < l.minLevel {
		return
	}
	l.Printf(prefix+" "+format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, colorBlue+"[DEBUG]"+colorReset, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, colorGreen+"[INFO]"+colorReset, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, colorYellow+"[WARN]"+colorReset, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, colorRed+"[ERROR]"+colorReset, format, v...)
}
