package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger adapts zap to GORM's logger interface. Traced queries carry the
// request and account ids when the calling context has them, so a slow query
// can be tied back to the HTTP request that issued it.
type GormLogger struct {
	base          *zap.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	skipNotFound  bool
}

// NewGormLogger wraps the given zap logger for GORM. Queries slower than
// 200ms are warned about and record-not-found results are not treated as
// errors; both can be changed with the option funcs.
func NewGormLogger(base *zap.Logger, level gormlogger.LogLevel, opts ...GormOption) *GormLogger {
	gl := &GormLogger{
		base:          base.Named("gorm"),
		level:         level,
		slowThreshold: 200 * time.Millisecond,
		skipNotFound:  true,
	}
	for _, opt := range opts {
		opt(gl)
	}
	return gl
}

// GormOption tweaks a GormLogger at construction time
type GormOption func(*GormLogger)

// WithSlowThreshold overrides the slow query warning threshold
func WithSlowThreshold(threshold time.Duration) GormOption {
	return func(l *GormLogger) {
		l.slowThreshold = threshold
	}
}

// WithNotFoundLogging reports record-not-found results as SQL errors.
// Off by default; lookups that legitimately miss would flood the log.
func WithNotFoundLogging() GormOption {
	return func(l *GormLogger) {
		l.skipNotFound = false
	}
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.base.Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.base.Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.base.Sugar().Errorf(msg, data...)
	}
}

// Trace implements gormlogger.Interface and is where queries get logged
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if accountID := GetAccountID(ctx); accountID != "" {
		fields = append(fields, zap.String("account_id", accountID))
	}

	switch {
	case err != nil && l.level >= gormlogger.Error:
		if l.skipNotFound && errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		l.base.Error("SQL error", append(fields, zap.Error(err))...)

	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.base.Warn("Slow SQL", append(fields, zap.Duration("threshold", l.slowThreshold))...)

	case l.level >= gormlogger.Info:
		l.base.Debug("SQL trace", fields...)
	}
}

// MapGormLogLevel translates the application log level into the matching
// GORM trace level
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
