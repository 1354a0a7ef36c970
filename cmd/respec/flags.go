package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds the flags that shape the HTML output.
type renderFlags struct {
	format    string
	template  string
	style     string
	assetPath string
	noStyle   bool
	unsafe    bool
	hardWraps bool
	noAutoIDs bool
	tocMin    int
	tocMax    int
}

// pdfFlags holds PDF printing flags.
type pdfFlags struct {
	enabled   bool
	size      string
	margin    float64
	landscape bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	render   renderFlags
	pdf      pdfFlags
	output   string
	workers  int
	timeout  string
	fragment bool
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	render renderFlags
	addr   string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "input format: kramdown, gfm, commonmark")
	fs.StringVar(&f.template, "template", "", "host template name")
	fs.StringVar(&f.style, "style", "", "CSS style name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
	fs.BoolVar(&f.unsafe, "unsafe", false, "pass raw HTML through")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render newlines as <br>")
	fs.BoolVar(&f.noAutoIDs, "no-auto-ids", false, "only anchor headings with an explicit {#id}")
	fs.IntVar(&f.tocMin, "toc-min", 0, "lowest heading level listed by {:toc} (1-6)")
	fs.IntVar(&f.tocMax, "toc-max", 0, "highest heading level listed by {:toc} (1-6)")
}

func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also print a PDF (requires Chrome)")
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.BoolVar(&f.landscape, "landscape", false, "landscape orientation")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.fragment, "fragment", false, "write the body without a host page")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addPDFFlags(fs, &f.pdf)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, []string, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &serveFlags{}

	fs.StringVar(&f.addr, "addr", "", "listen address (default "+defaultAddr+")")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printServeUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
