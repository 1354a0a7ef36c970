package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-respec"
	"github.com/alnah/go-respec/internal/config"
)

// ErrNoInput indicates neither an argument nor input.defaultDir named an input.
var ErrNoInput = errors.New("no input specified")

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	cfg, err := loadConfig(flags.common, loadEnvConfig())
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, flags.common, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	warnUnknownEnvVars(logger)

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files in %s", ErrNoInput, inputPath)
	}

	size := min(respec.ResolvePoolSize(cfg.Workers), len(files))
	logger.Debug("starting conversion", zap.Int("files", len(files)), zap.Int("workers", size))

	pool := respec.NewConverterPool(size, converterOptions(cfg, flags.render.noStyle, logger)...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing converters", zap.Error(err))
		}
	}()

	params := &conversionParams{
		toc:      tocFromConfig(cfg),
		page:     pageFromConfig(cfg),
		fragment: cfg.HTML.Fragment,
		pdf:      cfg.PDF.Enabled,
	}
	results := convertBatch(ctx, converterPool{pool}, files, params)
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// mergeFlags copies explicitly set convert flags into cfg (CLI wins).
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	mergeRenderFlags(&flags.render, cfg)

	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.fragment {
		cfg.HTML.Fragment = true
	}
	if flags.pdf.enabled {
		cfg.PDF.Enabled = true
	}
	if flags.pdf.size != "" {
		cfg.PDF.Size = flags.pdf.size
	}
	if flags.pdf.margin != 0 {
		cfg.PDF.Margin = flags.pdf.margin
	}
	if flags.pdf.landscape {
		cfg.PDF.Landscape = true
	}
}

// resolveInputPath picks the positional argument, else input.defaultDir.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir picks --output, else output.defaultDir, else "" (next to
// each source).
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

func pageFromConfig(cfg *config.Config) *respec.PageSettings {
	if cfg.PDF.Size == "" && cfg.PDF.Margin == 0 && !cfg.PDF.Landscape {
		return nil
	}
	return &respec.PageSettings{
		Size:      cfg.PDF.Size,
		Margin:    cfg.PDF.Margin,
		Landscape: cfg.PDF.Landscape,
	}
}
