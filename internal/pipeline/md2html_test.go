package pipeline

// Notes:
// - These tests run the full goldmark engine; finer-grained rendering
//   behavior is covered in internal/render and internal/annotation.
// - Sources go through CommonMarkPreprocessor first, as in Converter.Convert;
//   ToHTML only turns its highlight placeholders into <mark>.
// - Every converter here is shared by its subtests on purpose: ToHTML must
//   not keep state between calls.

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	"github.com/alnah/go-respec/internal/annotation"
)

func newTestConverter(t *testing.T, format string) *GoldmarkConverter {
	t.Helper()
	f, err := LookupFormat(format)
	if err != nil {
		t.Fatalf("LookupFormat(%q): %v", format, err)
	}
	return NewGoldmarkConverter(ConverterOptions{Format: f, Logger: zaptest.NewLogger(t)})
}

// ---------------------------------------------------------------------------
// TestToHTML
// ---------------------------------------------------------------------------

func TestToHTML(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, "kramdown")

	tests := []struct {
		name     string
		src      string
		contains []string
		excludes []string
	}{
		{
			name:     "outermost section",
			src:      "Text\n",
			contains: []string{"<section>\n<p>Text</p>\n</section>\n\n"},
		},
		{
			name: "annotated heading and paragraph",
			src:  "## Scope\n{:& informative}\n\nRequirement.\n{:& T1,T2}\n",
			contains: []string{
				"<section class=\"informative\">\n<h2 id=\"scope\">Scope</h2>",
				"<p data-tests=\"T1,T2\">Requirement.</p>",
			},
		},
		{
			name:     "table annotation",
			src:      "| a | b |\n|---|---|\n| 1 | 2 |\n{:& needs-test}\n",
			contains: []string{`<table class="needs-test">`},
		},
		{
			name:     "toc placeholder",
			src:      "* TOC\n{:toc}\n\n## One\n\n## Two\n",
			contains: []string{`<ul id="markdown-toc">`, `<a href="#one" id="markdown-toc-one">One</a>`},
			excludes: []string{"<li>TOC</li>"},
		},
		{
			name:     "no toc placeholder",
			src:      "## One\n",
			excludes: []string{"markdown-toc"},
		},
		{
			name:     "highlight",
			src:      "a ==b== c\n",
			contains: []string{"<mark>b</mark>"},
		},
		{
			name:     "highlighted code",
			src:      "```go\nfunc main() {}\n```\n",
			contains: []string{`class="chroma"`},
		},
		{
			name:     "definition list",
			src:      "Term\n: Definition\n",
			contains: []string{"<dl>", "<dd>Definition</dd>"},
		},
		{
			name:     "raw html escaped by default",
			src:      "<div>x</div>\n",
			excludes: []string{"<div>x</div>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := (&CommonMarkPreprocessor{}).PreprocessMarkdown(context.Background(), tt.src)
			got, err := conv.ToHTML(context.Background(), src, TOCLevels{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("output lacks %q\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("output contains %q\n%s", s, got)
				}
			}
		})
	}
}

func TestToHTML_MalformedAnnotation(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, "kramdown")
	_, err := conv.ToHTML(context.Background(), "{:& T1}\n\nText\n\n{:& T2}\n", TOCLevels{})
	if !errors.Is(err, annotation.ErrMalformedAnnotation) {
		t.Fatalf("error = %v, want %v", err, annotation.ErrMalformedAnnotation)
	}

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	var me *annotation.MalformedError
	if !errors.As(errs[1], &me) || me.Line != 5 || me.Column != 1 {
		t.Errorf("second error = %v, want line 5 column 1", errs[1])
	}
}

func TestToHTML_TOCLevels(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, "gfm")
	src := "{:toc}\n\n# Title\n\n## One\n\n### Deep\n"

	got, err := conv.ToHTML(context.Background(), src, TOCLevels{Min: 2, Max: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "markdown-toc-one") || strings.Contains(got, "markdown-toc-title") || strings.Contains(got, "markdown-toc-deep") {
		t.Errorf("TOC levels not applied\n%s", got)
	}

	_, err = conv.ToHTML(context.Background(), src, TOCLevels{Min: 3, Max: 2})
	if !errors.Is(err, ErrInvalidTOCLevel) {
		t.Errorf("error = %v, want %v", err, ErrInvalidTOCLevel)
	}
}

func TestToHTML_Options(t *testing.T) {
	t.Parallel()

	f, _ := LookupFormat("commonmark")
	conv := NewGoldmarkConverter(ConverterOptions{Format: f, UnsafeHTML: true, HardWraps: true, NoAutoIDs: true})

	got, err := conv.ToHTML(context.Background(), "## Title\n\n<div>x</div>\n\na\nb\n", TOCLevels{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"<div>x</div>", "a<br>", "<h2>Title</h2>"} {
		if !strings.Contains(got, s) {
			t.Errorf("output lacks %q\n%s", s, got)
		}
	}
}

func TestToHTML_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestConverter(t, "kramdown").ToHTML(ctx, "Text", TOCLevels{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want %v", err, context.Canceled)
	}
}

func TestToHTML_Concurrent(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, "kramdown")
	const n = 16

	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := "{:toc}\n\n## Intro\n\n## Intro\n\nText[^1]\n\n[^1]: Note.\n"
			results[i], errs[i] = conv.ToHTML(context.Background(), src, TOCLevels{})
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("conversion %d: %v", i, errs[i])
		}
		// Ids restart for every conversion.
		if !strings.Contains(results[i], `id="intro-1"`) || strings.Contains(results[i], `id="intro-2"`) {
			t.Errorf("conversion %d shares id state\n%s", i, results[i])
		}
		if strings.Count(results[i], `class="footnotes"`) != 1 {
			t.Errorf("conversion %d footnotes not rendered exactly once", i)
		}
	}
}
