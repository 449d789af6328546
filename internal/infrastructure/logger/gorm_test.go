package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func observedGormLogger(level gormlogger.LogLevel, opts ...GormOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), recorded
}

func traceQuery(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) {
		return sql, rows
	}
}

func TestGormLoggerImplementsInterface(t *testing.T) {
	gl, _ := observedGormLogger(gormlogger.Info)
	var _ gormlogger.Interface = gl
}

func TestGormLoggerLogMode(t *testing.T) {
	gl, _ := observedGormLogger(gormlogger.Info)

	quieter := gl.LogMode(gormlogger.Error)

	clone, ok := quieter.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Error, clone.level)
	assert.Equal(t, gormlogger.Info, gl.level, "original keeps its level")
}

func TestGormLoggerTrace(t *testing.T) {
	t.Run("failed query logs at error with the sql", func(t *testing.T) {
		gl, recorded := observedGormLogger(gormlogger.Error)

		gl.Trace(context.Background(), time.Now(),
			traceQuery("SELECT * FROM receipts WHERE id = $1", 0),
			errors.New("connection reset"))

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "SQL error", logs[0].Message)
		assert.Equal(t, zapcore.ErrorLevel, logs[0].Level)
		assert.Equal(t, "SELECT * FROM receipts WHERE id = $1", fieldMap(logs[0])["sql"].String)
	})

	t.Run("record not found is suppressed by default", func(t *testing.T) {
		gl, recorded := observedGormLogger(gormlogger.Error)

		gl.Trace(context.Background(), time.Now(),
			traceQuery("SELECT * FROM photos WHERE id = $1", 0),
			gormlogger.ErrRecordNotFound)

		assert.Empty(t, recorded.All())
	})

	t.Run("record not found logs when opted in", func(t *testing.T) {
		gl, recorded := observedGormLogger(gormlogger.Error, WithNotFoundLogging())

		gl.Trace(context.Background(), time.Now(),
			traceQuery("SELECT * FROM photos WHERE id = $1", 0),
			gormlogger.ErrRecordNotFound)

		require.Len(t, recorded.All(), 1)
	})

	t.Run("slow query warns with the threshold", func(t *testing.T) {
		gl, recorded := observedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Nanosecond))

		gl.Trace(context.Background(), time.Now().Add(-time.Second),
			traceQuery("UPDATE photos SET display_order = $1", 12), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "Slow SQL", logs[0].Message)
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	})

	t.Run("normal query traces at debug on info level", func(t *testing.T) {
		gl, recorded := observedGormLogger(gormlogger.Info)

		gl.Trace(context.Background(), time.Now(),
			traceQuery("SELECT * FROM expenses", 5), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "SQL trace", logs[0].Message)
		assert.Equal(t, int64(5), fieldMap(logs[0])["rows"].Integer)
	})

	t.Run("silent level traces nothing", func(t *testing.T) {
		gl, recorded := observedGormLogger(gormlogger.Silent)

		gl.Trace(context.Background(), time.Now(),
			traceQuery("SELECT 1", 1), nil)

		assert.Empty(t, recorded.All())
	})

	t.Run("carries request and account ids from the context", func(t *testing.T) {
		gl, recorded := observedGormLogger(gormlogger.Info)

		ctx := context.WithValue(context.Background(), RequestIDKey, "req-9")
		ctx = context.WithValue(ctx, AccountIDKey, "acc-3")

		gl.Trace(ctx, time.Now(), traceQuery("SELECT 1", 1), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		fields := fieldMap(logs[0])
		assert.Equal(t, "req-9", fields["request_id"].String)
		assert.Equal(t, "acc-3", fields["account_id"].String)
	})
}

func TestGormLoggerMessageLevels(t *testing.T) {
	gl, recorded := observedGormLogger(gormlogger.Info)

	gl.Info(context.Background(), "migrated %d tables", 7)
	gl.Warn(context.Background(), "retrying")
	gl.Error(context.Background(), "gave up")

	logs := recorded.All()
	require.Len(t, logs, 3)
	assert.Contains(t, logs[0].Message, "migrated 7 tables")
	assert.Equal(t, zapcore.WarnLevel, logs[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs[2].Level)
}

func TestGormLoggerSuppressesBelowLevel(t *testing.T) {
	gl, recorded := observedGormLogger(gormlogger.Error)

	gl.Info(context.Background(), "noise")
	gl.Warn(context.Background(), "noise")

	assert.Empty(t, recorded.All())
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"", gormlogger.Warn},
		{"bogus", gormlogger.Warn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MapGormLogLevel(tt.level), "level %q", tt.level)
	}
}
