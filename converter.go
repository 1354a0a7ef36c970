package respec

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-respec/internal/assets"
	"github.com/alnah/go-respec/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
)

// Converter turns kramdown-respec Markdown into sectioned HTML and, on
// request, PDF. Create with NewConverter, call Convert, and Close when done.
//
// Convert is safe for concurrent use: every call parses with its own
// goldmark engine and render state. PDF printing shares one browser.
type Converter struct {
	cfg           converterConfig
	format        pipeline.Format
	assetLoader   assets.AssetLoader
	template      string // host template source
	style         string // CSS injected before Input.CSS
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	pdfConverter  pdfConverter
	logger        *zap.Logger
}

// NewConverter creates a Converter with default configuration.
// Returns ErrUnknownFormat for an unregistered WithFormat name, and asset
// errors when the template or style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:  defaultTimeout,
			format:   pipeline.DefaultFormat,
			template: assets.DefaultTemplateName,
			style:    assets.DefaultStyleName,
		},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.cfg.logger
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	format, err := pipeline.LookupFormat(c.cfg.format)
	if err != nil {
		return nil, err
	}
	c.format = format

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.assetLoader = resolver

	if err := c.loadAssets(); err != nil {
		return nil, err
	}

	c.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{
		Format:     format,
		UnsafeHTML: c.cfg.unsafeHTML,
		HardWraps:  c.cfg.hardWraps,
		NoAutoIDs:  c.cfg.noAutoIDs,
		Logger:     c.logger,
	})

	// The browser itself starts on the first PDF request.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// loadAssets resolves the host template and the stylesheet.
func (c *Converter) loadAssets() error {
	tmpl, err := c.assetLoader.LoadTemplate(c.cfg.template)
	if err != nil {
		return fmt.Errorf("loading template %q: %w", c.cfg.template, err)
	}
	c.template = tmpl

	if c.cfg.noStyle {
		return nil
	}
	css, err := c.assetLoader.LoadStyle(c.cfg.style)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", c.cfg.style, err)
	}
	c.style = css
	return nil
}

// Format returns the name of the input format the converter parses.
func (c *Converter) Format() string {
	return c.format.Name
}

// Convert runs the full pipeline: front matter, preprocessing, Markdown to
// sectioned HTML with TOC and footnotes resolved, host template, CSS, and
// PDF when input.PDF is set.
//
// Malformed {:& ...} directives make Convert fail with an error matching
// ErrMalformedAnnotation; no partial output is returned.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	fm, mdContent, err := pipeline.SplitFrontMatter(input.Markdown)
	if err != nil {
		return nil, err
	}

	mdContent = c.preprocessor.PreprocessMarkdown(ctx, mdContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	body, err := c.htmlConverter.ToHTML(ctx, mdContent, input.TOC.levels(fm.TOC))
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent := body
	if !input.Fragment {
		htmlContent, err = c.renderHost(input, fm, body)
		if err != nil {
			return nil, err
		}
	}

	// Converter style first, user CSS last so it can override.
	cssContent := c.style
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{
		HTML: []byte(htmlContent),
		Body: []byte(body),
	}

	if input.PDF {
		res.PDF, err = c.print(ctx, htmlContent, input)
		if err != nil {
			return nil, err
		}
	}

	c.logger.Debug("converted document",
		zap.String("format", c.format.Name),
		zap.Int("htmlBytes", len(res.HTML)),
		zap.Int("pdfBytes", len(res.PDF)),
	)
	return res, nil
}

func (c *Converter) renderHost(input Input, fm pipeline.FrontMatter, body string) (string, error) {
	title := input.Title
	if title == "" {
		title = fm.Title
	}
	respecConfig, err := fm.RespecConfigJSON()
	if err != nil {
		return "", err
	}
	return assets.RenderHost(c.template, assets.HostData{
		Title:        title,
		Body:         body,
		RespecConfig: respecConfig,
	})
}

// print renders htmlContent to PDF. Relative resources are rewritten to
// file:// URLs first because the browser loads the page from a temp file.
func (c *Converter) print(ctx context.Context, htmlContent string, input Input) ([]byte, error) {
	if input.SourceDir != "" {
		var err error
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}
	pdf, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdf, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// validateInput is the trust boundary for callers building Input by hand;
// the CLI validates its config earlier.
func validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return input.Page.Validate()
}
