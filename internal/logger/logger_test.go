package logger

import (
	"testing"

	"github.com/deppfellow/hbnb/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	if got := NewLogger(cfg).GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("level = %s, want warn", got)
	}

	cfg.Logging.Level = ""
	if got := NewLogger(cfg).GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("development default = %s, want debug", got)
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	cases := map[zerolog.Level]tracelog.LogLevel{
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
	}
	for level, want := range cases {
		if got := tracelog.LogLevel(GetPgxTraceLogLevel(level)); got != want {
			t.Errorf("%s: got %v, want %v", level, got, want)
		}
	}
}

func TestWithTraceContextWithoutTransaction(t *testing.T) {
	log := zerolog.Nop()
	if got := WithTraceContext(log, nil); got.GetLevel() != log.GetLevel() {
		t.Error("a nil transaction must leave the logger untouched")
	}
}

func TestLoggerServiceWithoutLicense(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())
	if ls.GetApplication() != nil {
		t.Error("no license key must mean no New Relic application")
	}
	ls.Shutdown()
}
