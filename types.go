package respec

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-respec/internal/pipeline"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size      string  // "letter", "a4", "legal"
	Margin    float64 // inches, applied to all sides; 0 = DefaultMargin
	Landscape bool
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	switch strings.ToLower(p.Size) {
	case "", PageSizeLetter, PageSizeA4, PageSizeLegal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// TOC bounds the heading levels listed where {:toc} appears.
// Zero fields mean the default (1 and 6).
type TOC struct {
	MinLevel int
	MaxLevel int
}

// levels merges t over the front matter levels and the defaults.
func (t *TOC) levels(fm *pipeline.TOCLevels) pipeline.TOCLevels {
	out := pipeline.DefaultTOCLevels
	if fm != nil {
		if fm.Min != 0 {
			out.Min = fm.Min
		}
		if fm.Max != 0 {
			out.Max = fm.Max
		}
	}
	if t != nil {
		if t.MinLevel != 0 {
			out.Min = t.MinLevel
		}
		if t.MaxLevel != 0 {
			out.Max = t.MaxLevel
		}
	}
	return out
}

// Input contains conversion parameters.
type Input struct {
	Markdown  string        // Markdown content (required)
	Title     string        // Document title; overrides the front matter title
	CSS       string        // Custom CSS appended after the converter style
	SourceDir string        // Directory relative paths resolve against when printing
	TOC       *TOC          // TOC levels (optional, nil = front matter or defaults)
	Fragment  bool          // Return the body without the host template
	PDF       bool          // Print the document to PDF (requires Chrome)
	Page      *PageSettings // Page settings (optional, nil = defaults)
}

// Result holds the output of a conversion.
type Result struct {
	HTML []byte // full document, or the body alone for fragments
	Body []byte // resolved body: sections, TOC and footnotes in place
	PDF  []byte // nil unless Input.PDF
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout    time.Duration
	format     string
	template   string
	style      string
	noStyle    bool
	assetPath  string
	unsafeHTML bool
	hardWraps  bool
	noAutoIDs  bool
	logger     *zap.Logger
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF printing timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("respec: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithFormat selects the input flavor: "kramdown" (default), "gfm" or
// "commonmark". NewConverter fails with ErrUnknownFormat for other names.
func WithFormat(name string) Option {
	return func(c *Converter) {
		c.cfg.format = name
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}

// WithTemplate selects the host template by name.
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.template = name
	}
}

// WithStyle selects the stylesheet by name. An empty name disables styling.
func WithStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.style = name
		c.cfg.noStyle = name == ""
	}
}

// WithAssetPath adds a directory whose styles/ and templates/ override the
// embedded assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithUnsafeHTML passes raw HTML in the Markdown through to the output.
func WithUnsafeHTML(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.unsafeHTML = enabled
	}
}

// WithHardWraps renders soft line breaks as <br>.
func WithHardWraps(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.hardWraps = enabled
	}
}

// WithAutoIDs controls heading id generation. Enabled by default; when
// disabled only headings with an explicit {#id} are anchored and listed in
// the TOC.
func WithAutoIDs(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.noAutoIDs = !enabled
	}
}
