package logger

import (
	"context"
	"log/slog"

	"github.com/Raimguhinov/morrow-go/pkg/logger/slogpretty"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
)

const queryLog = "Query"

func NewTracer(l *Logger) pgx.QueryTracer {
	return &tracelog.TraceLog{
		Logger:   &Logger{l.Logger},
		LogLevel: tracelog.LogLevelTrace,
	}
}

func (l *Logger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if msg != queryLog {
		return
	}

	attrs := make([]slog.Attr, 0, len(data))
	for k, v := range data {
		if k == "sql" {
			attrs = append(attrs, slog.String(k, slogpretty.PrettySQL(v.(string))))
		}
	}
	l.LogAttrs(ctx, translateLevel(level), "pgx."+msg, attrs...)
}

func translateLevel(level tracelog.LogLevel) slog.Level {
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug, tracelog.LogLevelInfo:
		return slog.LevelDebug
	case tracelog.LogLevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
