package database

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger forwards gorm's query log into the global zerolog logger.
type gormLogger struct {
	level gormlogger.LogLevel
}

func NewGormLogger() gormlogger.Interface {
	return &gormLogger{level: gormlogger.Warn}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		log.Info().Msgf(msg, args...)
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		log.Warn().Msgf(msg, args...)
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		log.Error().Msgf(msg, args...)
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		event = log.Error().Err(err)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		event = log.Warn().Str("slow", elapsed.String())
	case l.level >= gormlogger.Info || zerolog.GlobalLevel() <= zerolog.DebugLevel:
		event = log.Debug()
	default:
		return
	}

	sql, rows := fc()
	event.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("gorm_query")
}
