package main

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-respec/internal/config"
)

// envConfig holds configuration from RESPEC_* environment variables.
type envConfig struct {
	ConfigPath string // RESPEC_CONFIG: config file name or path
	Format     string // RESPEC_FORMAT: input format
	Style      string // RESPEC_STYLE: CSS style name
	Template   string // RESPEC_TEMPLATE: host template name
	Timeout    string // RESPEC_TIMEOUT: PDF generation timeout
	InputDir   string // RESPEC_INPUT_DIR: default input directory
	OutputDir  string // RESPEC_OUTPUT_DIR: default output directory
	LogLevel   string // RESPEC_LOG_LEVEL: none, normal, debug
	Addr       string // RESPEC_ADDR: serve listen address
	Workers    int    // RESPEC_WORKERS: parallel workers
}

// knownEnvVars lists valid RESPEC_* environment variables.
var knownEnvVars = map[string]bool{
	"RESPEC_CONFIG":     true,
	"RESPEC_FORMAT":     true,
	"RESPEC_STYLE":      true,
	"RESPEC_TEMPLATE":   true,
	"RESPEC_TIMEOUT":    true,
	"RESPEC_INPUT_DIR":  true,
	"RESPEC_OUTPUT_DIR": true,
	"RESPEC_LOG_LEVEL":  true,
	"RESPEC_ADDR":       true,
	"RESPEC_WORKERS":    true,
}

// loadEnvConfig reads every recognized RESPEC_* variable.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("RESPEC_CONFIG"),
		Format:     os.Getenv("RESPEC_FORMAT"),
		Style:      os.Getenv("RESPEC_STYLE"),
		Template:   os.Getenv("RESPEC_TEMPLATE"),
		Timeout:    os.Getenv("RESPEC_TIMEOUT"),
		InputDir:   os.Getenv("RESPEC_INPUT_DIR"),
		OutputDir:  os.Getenv("RESPEC_OUTPUT_DIR"),
		LogLevel:   os.Getenv("RESPEC_LOG_LEVEL"),
		Addr:       os.Getenv("RESPEC_ADDR"),
	}
	if workers := os.Getenv("RESPEC_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized RESPEC_* variable,
// usually a typo.
func warnUnknownEnvVars(logger *zap.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "RESPEC_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
		}
	}
}

// applyEnvConfig fills config values the file left empty.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIfEmpty(&cfg.Format, env.Format)
	setIfEmpty(&cfg.Style, env.Style)
	setIfEmpty(&cfg.Template, env.Template)
	setIfEmpty(&cfg.Timeout, env.Timeout)
	setIfEmpty(&cfg.Input.DefaultDir, env.InputDir)
	setIfEmpty(&cfg.Output.DefaultDir, env.OutputDir)
	setIfEmpty(&cfg.Log.Level, env.LogLevel)
	setIfEmpty(&cfg.Serve.Addr, env.Addr)
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}

func setIfEmpty(dst *string, v string) {
	if v != "" && *dst == "" {
		*dst = v
	}
}
