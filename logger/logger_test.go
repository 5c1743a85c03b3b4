package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"chatty", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestWithAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	old := zapLog
	t.Cleanup(func() { zapLog = old })

	SetLogger(zap.New(core))
	With(zap.String("run_id", "abc"))
	Warn("skipping sample", zap.String("sample", "barcode01"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["run_id"] != "abc" || ctx["sample"] != "barcode01" {
		t.Errorf("unexpected context: %v", ctx)
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", entries[0].Level)
	}
}
