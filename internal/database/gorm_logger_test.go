package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestGormLogger(level gormlogger.LogLevel, cfg GormLoggerConfig) (*GormLogger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewGormLogger(logger, level, cfg), hook
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-9")

	t.Run("query", func(t *testing.T) {
		l, hook := newTestGormLogger(gormlogger.Info, GormLoggerConfig{})
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1", 1), nil)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.DebugLevel, entry.Level)
		assert.Equal(t, "SQL query executed", entry.Message)
		assert.Equal(t, "SELECT 1", entry.Data["sql"])
		assert.EqualValues(t, 1, entry.Data["rows"])
		assert.Equal(t, "req-9", entry.Data["request_id"])
	})

	t.Run("slow query", func(t *testing.T) {
		l, hook := newTestGormLogger(gormlogger.Warn, GormLoggerConfig{SlowThreshold: time.Millisecond})
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT 2", 0), nil)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "Slow SQL query", entry.Message)
	})

	t.Run("error", func(t *testing.T) {
		l, hook := newTestGormLogger(gormlogger.Error, GormLoggerConfig{})
		l.Trace(ctx, time.Now(), sqlFn("INSERT", 0), errors.New("constraint failed"))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, "Database operation failed", entry.Message)
	})

	t.Run("record not found ignored", func(t *testing.T) {
		l, hook := newTestGormLogger(gormlogger.Warn, GormLoggerConfig{IgnoreRecordNotFoundError: true})
		l.Trace(ctx, time.Now(), sqlFn("SELECT", 0), gorm.ErrRecordNotFound)

		assert.Empty(t, hook.AllEntries())
	})

	t.Run("silent", func(t *testing.T) {
		l, hook := newTestGormLogger(gormlogger.Silent, GormLoggerConfig{})
		l.Trace(ctx, time.Now(), sqlFn("SELECT", 0), errors.New("boom"))

		assert.Empty(t, hook.AllEntries())
	})
}

func TestGormLogger_LogModeReturnsCopy(t *testing.T) {
	l, hook := newTestGormLogger(gormlogger.Info, GormLoggerConfig{})
	silent := l.LogMode(gormlogger.Silent)

	silent.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, hook.AllEntries())

	l.Info(context.Background(), "shown %d", 2)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "shown 2", hook.LastEntry().Message)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLogLevel(logrus.DebugLevel))
	assert.Equal(t, gormlogger.Warn, GormLogLevel(logrus.InfoLevel))
	assert.Equal(t, gormlogger.Error, GormLogLevel(logrus.ErrorLevel))
	assert.Equal(t, gormlogger.Silent, GormLogLevel(logrus.PanicLevel))
}
