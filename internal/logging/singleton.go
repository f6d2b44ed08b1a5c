package logging

import (
	"log"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	global *Logger
)

// InitLogger initializes the process-wide logger. Call once from main
// before the server starts.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	global = logger
	return nil
}

// GetGlobalLogger returns the process-wide logger. If InitLogger has not
// been called (tests, tooling), it falls back to a stderr-only logger
// without rotation.
func GetGlobalLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		global = &Logger{
			Logger:   log.New(os.Stderr, "", log.LstdFlags),
			minLevel: levelWeights[LevelInfo],
		}
	}
	return global
}
