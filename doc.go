// Package respec converts kramdown-respec Markdown into specification HTML:
// headings open nested <section> elements, {:& ...} directives annotate the
// preceding block or section, and {:toc} and {:footnotes} markers are
// replaced with the table of contents and the footnotes once the whole
// document has been rendered.
//
// # Quick Start
//
//	conv, err := respec.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, respec.Input{
//	    Markdown: "# Intro\n{:& informative}\n\n{:toc}\n\n## Scope\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("spec.html", result.HTML, 0644)
//
// # Annotations
//
// A line "{:& payload}" directly below a block annotates it. Below a heading
// the attributes go to the <section> the heading opens. The keywords
// untestable, informative, note, no-test-needed and needs-test become a CSS
// class; any other payload becomes data-tests. A directive with nothing
// above it fails the conversion with ErrMalformedAnnotation.
//
// # Conversion Pipeline
//
//  1. Front matter (title, respecConfig, toc levels)
//  2. Markdown preprocessing (line endings, ==highlight== syntax)
//  3. Goldmark parsing with the annotation extension
//  4. Rendering with sections, then TOC and footnote resolution
//  5. Host template and CSS
//  6. PDF printing via headless Chrome (go-rod), when Input.PDF is set
//
// # Configuration
//
//	conv, err := respec.NewConverter(
//	    respec.WithFormat("gfm"),
//	    respec.WithTemplate("plain"),
//	    respec.WithAssetPath("/path/to/custom/assets"),
//	    respec.WithLogger(logger),
//	)
//
// # Parallel Processing
//
// Convert may be called from several goroutines. For batches that print
// PDFs, a ConverterPool gives each worker its own browser:
//
//	pool := respec.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package respec
