package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      Options
		wantLevel zapcore.Level
	}{
		{"defaults", Options{}, zapcore.InfoLevel},
		{"warn json", Options{Level: "warn", Format: FormatJSON}, zapcore.WarnLevel},
		{"verbose wins", Options{Level: "error", Verbose: true}, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, err := New(tt.opts)
			if err != nil {
				t.Fatalf("New(%+v): %v", tt.opts, err)
			}
			if !l.Core().Enabled(tt.wantLevel) {
				t.Errorf("level %s not enabled", tt.wantLevel)
			}
			if tt.wantLevel > zapcore.DebugLevel && l.Core().Enabled(tt.wantLevel-1) {
				t.Errorf("level %s enabled, want %s minimum", tt.wantLevel-1, tt.wantLevel)
			}
		})
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Parallel()

	if _, err := New(Options{Format: "xml"}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("format xml: got %v, want ErrUnknownFormat", err)
	}
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("level loud: got nil error")
	}
}

func TestOrNop(t *testing.T) {
	t.Parallel()

	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
	l := Nop()
	if OrNop(l) != l {
		t.Error("OrNop did not return the given logger")
	}
}
