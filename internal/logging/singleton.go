package logging

import (
	"os"
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the process-wide logger. Calling it again replaces the
// previous instance and closes its file.
func InitLogger(config *Config) error {
	l, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	old := instance
	instance = l
	mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// SetGlobalLogger installs an already built logger, mostly for tests
func SetGlobalLogger(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	instance = l
}

// GetGlobalLogger returns the process-wide logger. Before InitLogger is
// called it falls back to an info-level stdout logger.
func GetGlobalLogger() *Logger {
	mu.RLock()
	l := instance
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = newWriterLogger(os.Stdout, &Config{Level: LevelInfo})
	}
	return instance
}
