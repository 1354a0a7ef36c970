package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/alnah/go-respec"
	"github.com/alnah/go-respec/internal/config"
	"github.com/alnah/go-respec/internal/logging"
)

// loadConfig loads the config named by the flag or RESPEC_CONFIG, then fills
// empty values from the environment.
func loadConfig(common commonFlags, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()
	name := common.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		var err error
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeRenderFlags copies explicitly set render flags into cfg (CLI wins).
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.format != "" {
		cfg.Format = f.format
	}
	if f.template != "" {
		cfg.Template = f.template
	}
	if f.style != "" {
		cfg.Style = f.style
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.unsafe {
		cfg.HTML.Unsafe = true
	}
	if f.hardWraps {
		cfg.HTML.HardWraps = true
	}
	if f.noAutoIDs {
		cfg.HTML.NoAutoIDs = true
	}
	if f.tocMin != 0 {
		cfg.TOC.MinLevel = f.tocMin
	}
	if f.tocMax != 0 {
		cfg.TOC.MaxLevel = f.tocMax
	}
}

// newLogger builds the CLI logger. --verbose and --quiet override the
// configured level.
func newLogger(cfg *config.Config, common commonFlags, w io.Writer) (*zap.Logger, error) {
	level := cfg.Log.Level
	switch {
	case common.verbose:
		level = logging.LevelDebug
	case common.quiet:
		level = logging.LevelNone
	}
	return logging.New(level, w)
}

// converterOptions maps the merged configuration to library options.
func converterOptions(cfg *config.Config, noStyle bool, logger *zap.Logger) []respec.Option {
	opts := []respec.Option{
		respec.WithLogger(logger),
		respec.WithUnsafeHTML(cfg.HTML.Unsafe),
		respec.WithHardWraps(cfg.HTML.HardWraps),
		respec.WithAutoIDs(!cfg.HTML.NoAutoIDs),
	}
	if cfg.Format != "" {
		opts = append(opts, respec.WithFormat(cfg.Format))
	}
	if cfg.Template != "" {
		opts = append(opts, respec.WithTemplate(cfg.Template))
	}
	switch {
	case noStyle:
		opts = append(opts, respec.WithStyle(""))
	case cfg.Style != "":
		opts = append(opts, respec.WithStyle(cfg.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, respec.WithAssetPath(cfg.Assets.BasePath))
	}
	if d := cfg.TimeoutDuration(); d > 0 {
		opts = append(opts, respec.WithTimeout(d))
	}
	return opts
}

// tocFromConfig returns nil when the config leaves both levels unset, so the
// document front matter can still choose them.
func tocFromConfig(cfg *config.Config) *respec.TOC {
	if cfg.TOC.MinLevel == 0 && cfg.TOC.MaxLevel == 0 {
		return nil
	}
	return &respec.TOC{MinLevel: cfg.TOC.MinLevel, MaxLevel: cfg.TOC.MaxLevel}
}
