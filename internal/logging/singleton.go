package logging

import (
	"log"
	"os"
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger creates the shared logger from config. Call once at startup,
// before the server begins handling requests.
func InitLogger(config *Config) error {
	l, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		instance.Close()
	}
	instance = l
	return nil
}

// GetLogger returns the shared logger. If InitLogger has not run yet
// (e.g. in tests), it falls back to a stdout-only logger without rotation.
func GetLogger() *Logger {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = &Logger{
			Logger: log.New(os.Stdout, "", log.LstdFlags),
			level:  levelRank[LevelInfo],
		}
	}
	return instance
}
