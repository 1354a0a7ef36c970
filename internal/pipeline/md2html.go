package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"

	"github.com/alnah/go-respec/internal/annotation"
	"github.com/alnah/go-respec/internal/ids"
	"github.com/alnah/go-respec/internal/render"
)

var (
	// ErrHTMLConversion indicates HTML conversion failed.
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// ErrInvalidTOCLevel indicates TOC levels outside 1-6 or in the wrong order.
	ErrInvalidTOCLevel = errors.New("invalid TOC level")
)

// TOCLevels bounds the headings listed in the table of contents.
type TOCLevels struct {
	Min int `yaml:"minLevel"`
	Max int `yaml:"maxLevel"`
}

// DefaultTOCLevels lists every heading.
var DefaultTOCLevels = TOCLevels{Min: render.DefaultTOCMinLevel, Max: render.DefaultTOCMaxLevel}

// Validate checks both bounds are heading levels and Min <= Max.
func (l TOCLevels) Validate() error {
	err := validation.ValidateStruct(&l,
		validation.Field(&l.Min, validation.Required, validation.Min(1), validation.Max(6)),
		validation.Field(&l.Max, validation.Required, validation.Min(1), validation.Max(6)),
	)
	if err == nil && l.Min > l.Max {
		err = fmt.Errorf("minLevel %d is greater than maxLevel %d", l.Min, l.Max)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTOCLevel, err)
	}
	return nil
}

// HTMLConverter abstracts Markdown to HTML body conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string, toc TOCLevels) (string, error)
}

// ConverterOptions configures a GoldmarkConverter.
type ConverterOptions struct {
	Format     Format
	UnsafeHTML bool // pass raw HTML through
	HardWraps  bool // render newlines as <br>
	NoAutoIDs  bool // leave headings without an explicit id unanchored
	Logger     *zap.Logger
}

// GoldmarkConverter converts Markdown to a sectioned HTML body.
type GoldmarkConverter struct {
	opts ConverterOptions
}

// NewGoldmarkConverter returns a converter for opts.Format.
func NewGoldmarkConverter(opts ConverterOptions) *GoldmarkConverter {
	if opts.Format.Name == "" {
		opts.Format, _ = LookupFormat(DefaultFormat)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &GoldmarkConverter{opts: opts}
}

// newEngine builds a goldmark instance bound to one render state.
func (c *GoldmarkConverter) newEngine(st *render.State) goldmark.Markdown {
	exts := append(c.opts.Format.Extensions(),
		annotation.Extension,
		st.Extension(),
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		),
	)

	parserOpts := []parser.Option{parser.WithHeadingAttribute()}
	if !c.opts.NoAutoIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	var rendererOpts []renderer.Option
	if c.opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	if c.opts.UnsafeHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// ToHTML converts preprocessed Markdown to a resolved body fragment.
// Malformed annotations are reported as errors matching
// annotation.ErrMalformedAnnotation. Goldmark has no context support, so the
// work runs in a goroutine and ctx is honored by select.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string, toc TOCLevels) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if toc == (TOCLevels{}) {
		toc = DefaultTOCLevels
	}
	if err := toc.Validate(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: panic: %v", ErrHTMLConversion, r)}
			}
		}()
		out, err := c.convert([]byte(content), toc)
		done <- result{html: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

func (c *GoldmarkConverter) convert(source []byte, toc TOCLevels) (string, error) {
	st := render.NewState(
		render.WithTOCLevels(toc.Min, toc.Max),
		render.WithLogger(c.opts.Logger),
	)
	md := c.newEngine(st)

	pc := parser.NewContext(parser.WithIDs(ids.New()))
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))
	if err := annotation.Err(pc); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	body, err := st.Resolve(buf.Bytes(), md.Renderer(), source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	if !c.opts.UnsafeHTML {
		// Raw HTML may legitimately open sections of its own.
		if err := CheckSections(body); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
	}

	c.opts.Logger.Debug("converted markdown",
		zap.String("format", c.opts.Format.Name),
		zap.Int("sourceBytes", len(source)),
		zap.Int("records", len(st.Records())),
	)
	return ConvertMarkPlaceholders(body), nil
}
