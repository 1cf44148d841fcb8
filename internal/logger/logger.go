package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.SugaredLogger = nil
)

// Initialize - builds the singleton logger with the requested level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	instance = logger.Sugar()
	return nil
}

// Get - returns the logger singleton
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - flushes buffered log entries
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug - wrapper over the Debug level
func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

// Info - wrapper over the Info level
func Info(args ...interface{}) {
	Get().Infoln(args...)
}

// Warn - wrapper over the Warn level
func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

// Error - wrapper over the Error level
func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Panic - wrapper over the Panic level
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
