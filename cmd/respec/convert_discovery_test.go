package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles
// ---------------------------------------------------------------------------

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "spec.md")
	writeFile(t, src, "# Spec\n")

	files, err := discoverFiles(src, "")
	if err != nil {
		t.Fatal(err)
	}
	want := FileToConvert{InputPath: src, OutputPath: filepath.Join(dir, "spec.html")}
	if len(files) != 1 || files[0] != want {
		t.Errorf("discoverFiles = %+v, want [%+v]", files, want)
	}
}

func TestDiscoverFiles_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "")
	writeFile(t, filepath.Join(dir, "sub", "b.markdown"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")

	out := filepath.Join(t.TempDir(), "out")
	files, err := discoverFiles(dir, out)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, f := range files {
		got = append(got, f.OutputPath)
	}
	sort.Strings(got)
	want := []string{filepath.Join(out, "a.html"), filepath.Join(out, "sub", "b.html")}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("outputs = %v, want %v", got, want)
	}
}

func TestDiscoverFiles_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	writeFile(t, txt, "")

	if _, err := discoverFiles(txt, ""); !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("error = %v, want %v", err, ErrInvalidExtension)
	}
	if _, err := discoverFiles(filepath.Join(dir, "missing.md"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want %v", err, os.ErrNotExist)
	}
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	in := filepath.Join("docs", "api", "spec.md")

	tests := []struct {
		name      string
		outputDir string
		baseDir   string
		want      string
	}{
		{"next to source", "", "", filepath.Join("docs", "api", "spec.html")},
		{"explicit html file", "out.html", "", "out.html"},
		{"explicit pdf file", "out.pdf", "", "out.html"},
		{"flat output dir", "build", "", filepath.Join("build", "spec.html")},
		{"mirrored tree", "build", "docs", filepath.Join("build", "api", "spec.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveOutputPath(in, tt.outputDir, tt.baseDir); got != tt.want {
				t.Errorf("resolveOutputPath = %q, want %q", got, tt.want)
			}
		})
	}

	if got := pdfOutputPath(filepath.Join("build", "spec.html")); got != filepath.Join("build", "spec.pdf") {
		t.Errorf("pdfOutputPath = %q", got)
	}
}
