package main

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/alnah/go-respec"
	"github.com/alnah/go-respec/internal/fileutil"
)

const (
	defaultAddr     = "localhost:8080"
	shutdownTimeout = 5 * time.Second
)

// ErrNotDirectory indicates a serve root that is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// previewServer renders the Markdown files under root on every request,
// so edits show up on reload.
type previewServer struct {
	root   string
	conv   CLIConverter
	toc    *respec.TOC
	logger *zap.Logger
	router chi.Router
}

func newPreviewServer(root string, conv CLIConverter, toc *respec.TOC, logger *zap.Logger) *previewServer {
	s := &previewServer{root: root, conv: conv, toc: toc, logger: logger}
	s.setupRoutes()
	return s
}

func (s *previewServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *previewServer) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Get("/*", s.handleFile)

	s.router = r
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func (s *previewServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleIndex lists every Markdown file under root, linked to its rendering.
func (s *previewServer) handleIndex(w http.ResponseWriter, _ *http.Request) {
	var docs []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && fileutil.IsMarkdown(p) {
			rel, err := filepath.Rel(s.root, p)
			if err != nil {
				return err
			}
			docs = append(docs, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("listing documents", zap.Error(err))
		http.Error(w, "cannot list documents", http.StatusInternalServerError)
		return
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Documents</title>\n</head>\n<body>\n<ul>\n")
	for _, doc := range docs {
		target := fileutil.ReplaceExt(doc, ".html")
		fmt.Fprintf(&b, "<li><a href=\"/%s\">%s</a></li>\n", html.EscapeString(target), html.EscapeString(doc))
	}
	b.WriteString("</ul>\n</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

// handleFile renders name.html from name.md or name.markdown, and serves
// any other file under root as is.
func (s *previewServer) handleFile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
	full := filepath.Join(s.root, filepath.FromSlash(name))

	if strings.EqualFold(filepath.Ext(full), ".html") {
		if src := markdownSource(full); src != "" {
			s.render(w, r, src)
			return
		}
	}
	if !fileutil.FileExists(full) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}

// markdownSource returns the Markdown file an .html path renders, or "".
func markdownSource(htmlPath string) string {
	for _, ext := range []string{".md", ".markdown"} {
		if src := fileutil.ReplaceExt(htmlPath, ext); fileutil.FileExists(src) {
			return src
		}
	}
	return ""
}

func (s *previewServer) render(w http.ResponseWriter, r *http.Request, src string) {
	content, err := os.ReadFile(src) // #nosec G304 -- path is cleaned and joined under root
	if err != nil {
		http.Error(w, "cannot read document", http.StatusInternalServerError)
		return
	}

	res, err := s.conv.Convert(r.Context(), respec.Input{
		Markdown: string(content),
		TOC:      s.toc,
	})
	switch {
	case errors.Is(err, respec.ErrMalformedAnnotation), errors.Is(err, respec.ErrInvalidTOCLevel), errors.Is(err, respec.ErrFrontMatter):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		s.logger.Error("rendering document", zap.String("file", src), zap.Error(err))
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(res.HTML)
}

// runServe starts the preview server and blocks until ctx is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	cfg, err := loadConfig(flags.common, loadEnvConfig())
	if err != nil {
		return err
	}
	mergeRenderFlags(&flags.render, cfg)
	if flags.addr != "" {
		cfg.Serve.Addr = flags.addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, flags.common, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	warnUnknownEnvVars(logger)

	root := "."
	if len(positional) > 0 {
		root = positional[0]
	} else if cfg.Input.DefaultDir != "" {
		root = cfg.Input.DefaultDir
	}
	if info, err := os.Stat(root); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	conv, err := respec.NewConverter(converterOptions(cfg, flags.render.noStyle, logger)...)
	if err != nil {
		return err
	}
	defer conv.Close()

	addr := cfg.Serve.Addr
	if addr == "" {
		addr = defaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           newPreviewServer(root, conv, tocFromConfig(cfg), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s on http://%s\n", root, addr)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
