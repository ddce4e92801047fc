package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pharmaduty/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output to slog. Missing rows are expected by the
// repositories and are never logged as errors.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, debug bool, slowThreshold time.Duration) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	if slowThreshold <= 0 {
		slowThreshold = defaultGormSlowThreshold
	}

	return &gormSlogLogger{
		logger:        base,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	query, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.String("statement", statementKind(query)),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", query),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	} else if level == slog.LevelWarn {
		attrs = append(attrs, slog.Duration("slow_threshold", l.slowThreshold))
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// classify picks how a finished statement is logged, if at all.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (slog.Level, string, bool) {
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		return slog.LevelError, "GORM query failed", true
	case elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "GORM slow query", true
	case l.level >= logger.Info:
		return slog.LevelDebug, "GORM query", true
	default:
		return 0, "", false
	}
}

// statementKind is the leading SQL keyword, e.g. SELECT.
func statementKind(query string) string {
	kind, _, _ := strings.Cut(strings.TrimSpace(query), " ")

	return strings.ToUpper(kind)
}
