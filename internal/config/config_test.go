package config

// Notes:
// - Tests that resolve config names change the working directory, so they
//   do not run in parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestValidate
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string // substring of the error, "" for valid
	}{
		{name: "zero value", cfg: Config{}},
		{
			name: "everything set",
			cfg: Config{
				Format: "gfm", Style: "default", Template: "plain",
				TOC:     TOCConfig{MinLevel: 2, MaxLevel: 3},
				PDF:     PDFConfig{Enabled: true, Size: "a4", Margin: 0.75},
				Workers: 4, Timeout: "45s",
				Log: LogConfig{Level: "debug"},
			},
		},
		{name: "unknown format", cfg: Config{Format: "rst"}, wantErr: "format"},
		{name: "style traversal", cfg: Config{Style: "../x"}, wantErr: "style"},
		{name: "template with extension", cfg: Config{Template: "x.html"}, wantErr: "template"},
		{name: "toc level too high", cfg: Config{TOC: TOCConfig{MaxLevel: 7}}, wantErr: "maxLevel"},
		{name: "toc inverted", cfg: Config{TOC: TOCConfig{MinLevel: 4, MaxLevel: 2}}, wantErr: "maxLevel"},
		{name: "page size", cfg: Config{PDF: PDFConfig{Size: "a5"}}, wantErr: "size"},
		{name: "margin", cfg: Config{PDF: PDFConfig{Margin: 5}}, wantErr: "margin"},
		{name: "too many workers", cfg: Config{Workers: MaxWorkers + 1}, wantErr: "workers"},
		{name: "bad timeout", cfg: Config{Timeout: "soon"}, wantErr: "timeout"},
		{name: "negative timeout", cfg: Config{Timeout: "-1s"}, wantErr: "timeout"},
		{name: "log level", cfg: Config{Log: LogConfig{Level: "trace"}}, wantErr: "level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrConfigInvalid) {
				t.Fatalf("error = %v, want %v", err, ErrConfigInvalid)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestTimeoutDuration(t *testing.T) {
	t.Parallel()

	if d := (&Config{Timeout: "2m"}).TimeoutDuration(); d != 2*time.Minute {
		t.Errorf("TimeoutDuration() = %v, want 2m", d)
	}
	if d := DefaultConfig().TimeoutDuration(); d != 0 {
		t.Errorf("TimeoutDuration() unset = %v, want 0", d)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig_Path(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, dir, "valid.yaml", "format: kramdown\ntoc:\n  minLevel: 2\n  maxLevel: 4\npdf:\n  enabled: true\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Format != "kramdown" || cfg.TOC.MinLevel != 2 || cfg.TOC.MaxLevel != 4 || !cfg.PDF.Enabled {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, dir, "unknown.yaml", "format: gfm\nfooter:\n  enabled: true\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want %v", err, ErrConfigParse)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, dir, "invalid.yaml", "format: rst\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigInvalid) {
			t.Errorf("error = %v, want %v", err, ErrConfigInvalid)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want %v", err, ErrConfigNotFound)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want %v", err, ErrEmptyConfigName)
		}
	})
}

func TestLoadConfig_Name(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "team.yml", "style: minimal\n")
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Style != "minimal" {
		t.Errorf("Style = %q, want %q", cfg.Style, "minimal")
	}

	_, err = LoadConfig("absent")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrConfigNotFound)
	}
	if !strings.Contains(err.Error(), "absent.yaml") || !strings.Contains(err.Error(), appDir) {
		t.Errorf("error does not list tried paths: %v", err)
	}
}

func TestLoadConfig_UserConfigDir(t *testing.T) {
	dir := t.TempDir()
	xdg := filepath.Join(dir, "xdg")
	if err := os.MkdirAll(filepath.Join(xdg, appDir), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(xdg, appDir), "shared.yaml", "workers: 2\n")
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", xdg)

	userDir, err := os.UserConfigDir()
	if err != nil || userDir != xdg {
		t.Skipf("user config dir not controllable here: %q, %v", userDir, err)
	}

	cfg, err := LoadConfig("shared")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}
