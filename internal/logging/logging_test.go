package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		wantInfo  bool
		wantDebug bool
	}{
		{LevelNone, false, false},
		{"", true, false},
		{LevelNormal, true, false},
		{LevelDebug, true, true},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log, err := New(tt.level, &buf)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			log.Info("info message")
			log.Debug("debug message")
			_ = log.Sync()

			out := buf.String()
			if got := strings.Contains(out, "info message"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v\n%s", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v\n%s", got, tt.wantDebug, out)
			}
		})
	}
}

func TestNew_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, _ := New(LevelNormal, &buf)
	log.Warn("converted", zap.String("file", "spec.md"))
	_ = log.Sync()

	out := buf.String()
	if !strings.HasPrefix(out, "WARN\tconverted") || !strings.Contains(out, `"file": "spec.md"`) {
		t.Errorf("unexpected line %q", out)
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("trace", &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown level")
	}
}
