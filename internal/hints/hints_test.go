package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel(): they call t.Setenv and
//   swap the package-level IsInContainer.

import (
	"strings"
	"testing"
)

func clearCI(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		t.Setenv(k, "")
	}
}

func stubContainer(t *testing.T, in bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return in }
}

// ---------------------------------------------------------------------------
// ForBrowserConnect
// ---------------------------------------------------------------------------

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		ci          string
		container   bool
		noSandbox   string
		browserBin  string
		wantSandbox bool
		wantBin     bool
	}{
		{"in CI", "true", false, "", "", true, true},
		{"in docker", "", true, "", "", true, true},
		{"sandbox already disabled", "", true, "1", "", false, true},
		{"custom browser set", "", false, "", "/usr/bin/chromium", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCI(t)
			stubContainer(t, tt.container)
			t.Setenv("CI", tt.ci)
			t.Setenv("ROD_NO_SANDBOX", tt.noSandbox)
			t.Setenv("ROD_BROWSER_BIN", tt.browserBin)

			hint := ForBrowserConnect()
			if got := strings.Contains(hint, "ROD_NO_SANDBOX"); got != tt.wantSandbox {
				t.Errorf("ROD_NO_SANDBOX hint = %v, want %v (%q)", got, tt.wantSandbox, hint)
			}
			if got := strings.Contains(hint, "ROD_BROWSER_BIN"); got != tt.wantBin {
				t.Errorf("ROD_BROWSER_BIN hint = %v, want %v (%q)", got, tt.wantBin, hint)
			}
			if !tt.wantSandbox && !tt.wantBin && hint != "" {
				t.Errorf("expected no hint, got %q", hint)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Static hints
// ---------------------------------------------------------------------------

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{"respec.yaml", "/home/u/.config/go-respec/respec.yaml"})
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("missing hint prefix: %q", got)
	}
	if !strings.Contains(got, "or create /home/u/.config/go-respec/respec.yaml") {
		t.Errorf("expected user config path, got %q", got)
	}

	if got := ForConfigNotFound([]string{"respec.yaml"}); strings.Contains(got, "or create") {
		t.Errorf("unexpected create suggestion: %q", got)
	}
}

func TestForAvailable(t *testing.T) {
	t.Parallel()

	if got := ForAvailable(nil); got != "" {
		t.Errorf("ForAvailable(nil) = %q, want empty", got)
	}
	want := "\n  hint: available: commonmark, gfm, kramdown"
	if got := ForAvailable([]string{"commonmark", "gfm", "kramdown"}); got != want {
		t.Errorf("ForAvailable = %q, want %q", got, want)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"timeout":    ForTimeout(),
		"output":     ForOutputDirectory(),
		"annotation": ForMalformedAnnotation(),
		"usage":      ForUsage(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s: missing hint prefix in %q", name, hint)
		}
	}
	if !strings.Contains(ForMalformedAnnotation(), "{:& ...}") {
		t.Error("annotation hint should show the directive syntax")
	}
}
