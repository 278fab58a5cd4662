package database

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// DefaultSlowThreshold is the query duration above which a statement is logged as slow
const DefaultSlowThreshold = 200 * time.Millisecond

// GormLoggerConfig tunes the gorm logger
type GormLoggerConfig struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
	AddCaller                 bool
}

// GormLogger sends gorm's output to logrus
type GormLogger struct {
	logger   logrus.FieldLogger
	logLevel gormlogger.LogLevel
	config   GormLoggerConfig
}

// NewGormLogger returns a gorm logger writing through logger. Unset config
// fields fall back to DefaultSlowThreshold.
func NewGormLogger(logger logrus.FieldLogger, level gormlogger.LogLevel, config GormLoggerConfig) *GormLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if config.SlowThreshold <= 0 {
		config.SlowThreshold = DefaultSlowThreshold
	}
	return &GormLogger{logger: logger, logLevel: level, config: config}
}

// GormLogLevel maps a logrus level onto gorm's coarser levels
func GormLogLevel(level logrus.Level) gormlogger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return gormlogger.Info
	case level >= logrus.WarnLevel:
		return gormlogger.Warn
	case level >= logrus.ErrorLevel:
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= gormlogger.Info {
		l.entry(ctx).Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= gormlogger.Warn {
		l.entry(ctx).Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= gormlogger.Error {
		l.entry(ctx).Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := l.entry(ctx).WithFields(logrus.Fields{
		"sql":     sql,
		"elapsed": elapsed.String(),
		"rows":    rows,
	})
	if l.config.AddCaller {
		entry = entry.WithField("caller", utils.FileWithLineNum())
	}

	switch {
	case err != nil && l.logLevel >= gormlogger.Error &&
		(!errors.Is(err, gorm.ErrRecordNotFound) || !l.config.IgnoreRecordNotFoundError):
		entry.WithError(err).Error("Database operation failed")
	case elapsed > l.config.SlowThreshold && l.logLevel >= gormlogger.Warn:
		entry.WithField("threshold", l.config.SlowThreshold.String()).Warn("Slow SQL query")
	case l.logLevel >= gormlogger.Info:
		entry.Debug("SQL query executed")
	}
}

func (l *GormLogger) entry(ctx context.Context) logrus.FieldLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.logger.WithField("request_id", id)
	}
	return l.logger
}
