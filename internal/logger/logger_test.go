package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		debug     bool
		info      bool
		wantError bool
	}{
		{"default", DefaultConfig(), false, true, false},
		{"debug json", Config{Level: "debug", Format: "json"}, true, true, false},
		{"warn", Config{Level: "warn", Format: "console"}, false, false, false},
		{"bad level falls back to info", Config{Level: "loud"}, false, true, false},
		{"development", Config{Level: "debug", Development: true}, true, true, false},
		{"bad format", Config{Level: "info", Format: "xml"}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := log.Core().Enabled(zapcore.DebugLevel); got != tt.debug {
				t.Errorf("debug enabled = %v, want %v", got, tt.debug)
			}
			if got := log.Core().Enabled(zapcore.InfoLevel); got != tt.info {
				t.Errorf("info enabled = %v, want %v", got, tt.info)
			}
		})
	}
}

func TestNop(t *testing.T) {
	if Nop().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should not be enabled")
	}
}
