package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/alnah/go-respec"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "spec.md"), "# Spec\n{:& informative}\n\n![logo](logo.png)\n")
	writeFile(t, filepath.Join(root, "docs", "guide.markdown"), "## Guide\n")
	writeFile(t, filepath.Join(root, "bad.md"), "{:& note}\n")
	writeFile(t, filepath.Join(root, "logo.png"), "png")

	conv, err := respec.NewConverter(respec.WithStyle(""), respec.WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	srv := httptest.NewServer(newPreviewServer(root, conv, nil, zaptest.NewLogger(t)))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url) // #nosec G107 -- test server URL
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestPreviewServer(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		contains   string
	}{
		{"health", "/healthz", http.StatusOK, `"status":"ok"`},
		{"index", "/", http.StatusOK, `<a href="/docs/guide.html">docs/guide.markdown</a>`},
		{"rendered", "/spec.html", http.StatusOK, `<section class="informative">`},
		{"rendered markdown extension", "/docs/guide.html", http.StatusOK, `<h2 id="guide">Guide</h2>`},
		{"static file", "/logo.png", http.StatusOK, "png"},
		{"malformed", "/bad.html", http.StatusUnprocessableEntity, "line 1, column 1"},
		{"missing", "/nope.html", http.StatusNotFound, ""},
		{"traversal", "/../../etc/passwd", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, body := get(t, srv.URL+tt.path)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d\n%s", status, tt.wantStatus, body)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("body missing %q:\n%s", tt.contains, body)
			}
		})
	}
}

func TestPreviewServer_KeepsRelativePaths(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	_, body := get(t, srv.URL+"/spec.html")
	if !strings.Contains(body, `src="logo.png"`) || strings.Contains(body, "file://") {
		t.Errorf("preview should keep relative resource paths:\n%s", body)
	}
}
