// Package config loads the YAML configuration of the respec CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-respec/internal/assets"
	"github.com/alnah/go-respec/internal/fileutil"
	"github.com/alnah/go-respec/internal/pipeline"
	"github.com/alnah/go-respec/internal/yamlutil"
)

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// appDir is the directory under os.UserConfigDir searched for named configs.
const appDir = "go-respec"

// MaxWorkers caps the number of parallel conversions.
const MaxWorkers = 32

func init() {
	// Report validation errors with the keys users write in their files.
	validation.ErrorTag = "yaml"
}

// Config holds the settings of a CLI run. Zero values mean "use the default".
type Config struct {
	Input    InputConfig  `yaml:"input"`
	Output   OutputConfig `yaml:"output"`
	Format   string       `yaml:"format"`   // kramdown, gfm, commonmark
	Style    string       `yaml:"style"`    // built-in or custom style name
	Template string       `yaml:"template"` // built-in or custom host template name
	Assets   AssetsConfig `yaml:"assets"`
	TOC      TOCConfig    `yaml:"toc"`
	HTML     HTMLConfig   `yaml:"html"`
	PDF      PDFConfig    `yaml:"pdf"`
	Workers  int          `yaml:"workers"` // 0 = automatic
	Timeout  string       `yaml:"timeout"` // Go duration, e.g. "30s"
	Log      LogConfig    `yaml:"log"`
	Serve    ServeConfig  `yaml:"serve"`
}

type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"`
}

type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
}

type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// TOCConfig bounds the headings listed by {:toc}.
type TOCConfig struct {
	MinLevel int `yaml:"minLevel"`
	MaxLevel int `yaml:"maxLevel"`
}

func (c TOCConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MinLevel, validation.Min(0), validation.Max(6)),
		validation.Field(&c.MaxLevel, validation.Min(0), validation.Max(6),
			validation.When(c.MinLevel > 0 && c.MaxLevel > 0, validation.Min(c.MinLevel).Error("must not be less than minLevel"))),
	)
}

// HTMLConfig tunes goldmark rendering.
type HTMLConfig struct {
	Unsafe    bool `yaml:"unsafe"`    // pass raw HTML through
	HardWraps bool `yaml:"hardWraps"` // newlines become <br>
	NoAutoIDs bool `yaml:"noAutoIds"` // do not generate heading ids
	Fragment  bool `yaml:"fragment"`  // write the body without a host page
}

// PDFConfig controls printing.
type PDFConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Size      string  `yaml:"size"`   // letter, a4, legal
	Margin    float64 `yaml:"margin"` // inches
	Landscape bool    `yaml:"landscape"`
}

func (c PDFConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Size, validation.In("letter", "a4", "legal")),
		validation.Field(&c.Margin, validation.Min(0.0), validation.Max(3.0)),
	)
}

type LogConfig struct {
	Level string `yaml:"level"` // none, normal, debug
}

func (c LogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("none", "normal", "debug")),
	)
}

type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Validate checks every field. LoadConfig calls it; callers building a Config
// by hand should too.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.By(knownFormat)),
		validation.Field(&c.Style, validation.By(assetName)),
		validation.Field(&c.Template, validation.By(assetName)),
		validation.Field(&c.TOC),
		validation.Field(&c.PDF),
		validation.Field(&c.Workers, validation.Min(0), validation.Max(MaxWorkers)),
		validation.Field(&c.Timeout, validation.By(duration)),
		validation.Field(&c.Log),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

func knownFormat(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := pipeline.LookupFormat(s); err != nil {
		return validation.NewError("validation_format_unknown", "must be one of "+strings.Join(pipeline.FormatNames(), ", "))
	}
	return nil
}

func assetName(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return assets.ValidateAssetName(s)
}

func duration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return validation.NewError("validation_duration_invalid", "must be a duration such as 30s or 2m")
	}
	if d <= 0 {
		return validation.NewError("validation_duration_positive", "must be positive")
	}
	return nil
}

// TimeoutDuration returns the parsed timeout, or 0 when unset.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// DefaultConfig returns a configuration where every setting uses its default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads a configuration by file path or by name.
// A name (no path separator) is looked up as name.yaml or name.yml in the
// current directory, then in the user config directory under go-respec/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if path, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

func resolveConfigPath(name string) (string, error) {
	exts := []string{".yaml", ".yml"}
	dirs := []string{"."}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, appDir))
	}

	var tried []string
	for _, dir := range dirs {
		for _, ext := range exts {
			p := filepath.Join(dir, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}
	return "", &NotFoundError{Tried: tried}
}

// NotFoundError lists the paths searched for a named config.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }
