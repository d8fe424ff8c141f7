package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
)

// slowQueryThreshold marks queries worth a warning.
const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes GORM's logging through the application logger
type GormLogger struct {
	logger coreport.Logger
	level  gormlogger.LogLevel
}

// NewGormLogger creates a GORM logger adapter backed by the application logger
func NewGormLogger(logger coreport.Logger) gormlogger.Interface {
	return &GormLogger{
		logger: logger,
		level:  gormlogger.Warn,
	}
}

// LogMode sets the log level
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.level = level
	return &newLogger
}

// Info logs informational messages
func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Info {
		return
	}
	l.logger.Info(fmt.Sprintf(msg, data...), map[string]any{"component": "gorm"})
}

// Warn logs warning messages
func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Warn {
		return
	}
	l.logger.Warn(fmt.Sprintf(msg, data...), map[string]any{"component": "gorm"})
}

// Error logs error messages
func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Error {
		return
	}
	l.logger.Error(fmt.Sprintf(msg, data...), map[string]any{"component": "gorm"})
}

// Trace logs executed statements. Not-found results are left to the
// repositories; they are part of normal control flow.
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := map[string]any{
		"component":  "gorm",
		"elapsed_ms": elapsed.Milliseconds(),
		"rows":       rows,
		"sql":        sql,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		fields["error"] = err.Error()
		l.logger.Error("Query failed", fields)
	case elapsed > slowQueryThreshold:
		l.logger.Warn("Slow query", fields)
	case l.level >= gormlogger.Info:
		l.logger.Debug("Query executed", fields)
	}
}
