// Package logger wraps a package-level zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger
var baseLogger *zap.Logger

// Init initializes the package-level logger
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	baseLogger = zapLogger
	log = zapLogger.Sugar()
	return nil
}

// Get returns the sugared logger, falling back to a no-op logger before Init.
func Get() *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log.Desugar().WithOptions(zap.AddCallerSkip(-1)).Sugar()
}

// Base returns the underlying zap logger for libraries that need a
// *zap.Logger or a stdlib adapter (gorm).
func Base() *zap.Logger {
	if baseLogger == nil {
		return zap.NewNop()
	}
	return baseLogger.WithOptions(zap.AddCallerSkip(-1))
}

// Sync flushes any buffered log entries
func Sync() {
	if baseLogger != nil {
		_ = baseLogger.Sync()
	}
}

func Debugf(template string, args ...interface{}) {
	if log != nil {
		log.Debugf(template, args...)
	}
}

func Infof(template string, args ...interface{}) {
	if log != nil {
		log.Infof(template, args...)
	}
}

func Infow(msg string, keysAndValues ...interface{}) {
	if log != nil {
		log.Infow(msg, keysAndValues...)
	}
}

func Errorf(template string, args ...interface{}) {
	if log != nil {
		log.Errorf(template, args...)
	}
}

// Fatalf logs and exits the process.
func Fatalf(template string, args ...interface{}) {
	if log == nil {
		panic(fmt.Sprintf(template, args...))
	}
	log.Fatalf(template, args...)
}
