package logger

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/tracelog"
)

// NewPgxTracer 는 pgx 쿼리 로그를 전역 로거로 흘려보내는 tracer 를 만든다.
// level 은 pgx tracelog 레벨 이름(trace/debug/info/warn/error/none)이다.
func NewPgxTracer(level string) *tracelog.TraceLog {
	lv, err := tracelog.LogLevelFromString(strings.ToLower(level))
	if err != nil {
		lv = tracelog.LogLevelWarn
	}
	return &tracelog.TraceLog{
		Logger:   tracelog.LoggerFunc(logPgx),
		LogLevel: lv,
	}
}

func logPgx(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	fields := Fields{"component": "pgx"}
	for k, v := range data {
		fields[k] = v
	}
	switch level {
	case tracelog.LogLevelError:
		ErrorWithFields(msg, fields)
	case tracelog.LogLevelWarn:
		WarnWithFields(msg, fields)
	case tracelog.LogLevelInfo:
		InfoWithFields(msg, fields)
	default:
		DebugWithFields(msg, fields)
	}
}
