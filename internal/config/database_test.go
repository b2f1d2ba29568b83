package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormLogger_Trace(t *testing.T) {
	stmt := func() (string, int64) { return "SELECT 1", 1 }
	now := time.Now()
	slow := now.Add(-time.Second)

	tests := []struct {
		name    string
		level   logger.LogLevel
		begin   time.Time
		err     error
		wantMsg string
		wantLvl zapcore.Level
	}{
		{"failure", logger.Warn, now, errors.New("boom"), "query failed", zapcore.ErrorLevel},
		{"slow", logger.Warn, slow, nil, "slow query", zapcore.WarnLevel},
		{"fast at warn is silent", logger.Warn, now, nil, "", 0},
		{"not found is not a failure", logger.Warn, now, gorm.ErrRecordNotFound, "", 0},
		{"fast at info", logger.Info, now, nil, "query", zapcore.DebugLevel},
		{"silent", logger.Silent, slow, errors.New("boom"), "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			l := newGormLogger(zap.New(core), tt.level)

			l.Trace(context.Background(), tt.begin, stmt, tt.err)

			if tt.wantMsg == "" {
				if logs.Len() != 0 {
					t.Fatalf("expected no logs, got %v", logs.All())
				}
				return
			}
			if logs.Len() != 1 {
				t.Fatalf("expected 1 log, got %d", logs.Len())
			}
			entry := logs.All()[0]
			if entry.Message != tt.wantMsg || entry.Level != tt.wantLvl {
				t.Fatalf("got %s at %s, want %s at %s", entry.Message, entry.Level, tt.wantMsg, tt.wantLvl)
			}
			if entry.ContextMap()["sql"] != "SELECT 1" {
				t.Fatalf("sql field = %v", entry.ContextMap()["sql"])
			}
		})
	}
}

func TestGormLogger_LogMode(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newGormLogger(zap.New(core), logger.Silent).LogMode(logger.Info)

	l.Info(context.Background(), "migrating %s", "users")
	if logs.Len() != 1 || logs.All()[0].Message != "migrating users" {
		t.Fatalf("unexpected logs: %v", logs.All())
	}
}
