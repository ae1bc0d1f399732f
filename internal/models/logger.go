package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// dbLogger routes gorm's log output through zerolog. The gorm log level is
// ignored, filtering happens on the zerolog side.
type dbLogger struct {
	Logger zerolog.Logger
}

func (l *dbLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *dbLogger) Info(_ context.Context, format string, args ...interface{}) {
	l.Logger.Info().Msgf(format, args...)
}

func (l *dbLogger) Warn(_ context.Context, format string, args ...interface{}) {
	l.Logger.Warn().Msgf(format, args...)
}

func (l *dbLogger) Error(_ context.Context, format string, args ...interface{}) {
	l.Logger.Error().Msgf(format, args...)
}

func (l *dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()
	event := l.Logger.Debug()

	// Not-found is an expected outcome for single-resource lookups, only
	// real query errors get logged as errors.
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.Str("sql", sql).Dur("duration", time.Since(begin)).Msg("[GORM] query")
}
