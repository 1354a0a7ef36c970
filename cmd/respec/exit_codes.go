package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-respec"
	"github.com/alnah/go-respec/internal/config"
)

// Exit codes for the respec CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, format or annotations
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// ErrUsage marks command line errors.
var ErrUsage = errors.New("invalid usage")

// usageError wraps a flag parsing error with ErrUsage. A help request is
// returned as is.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, respec.ErrBrowserConnect) ||
		errors.Is(err, respec.ErrPageCreate) ||
		errors.Is(err, respec.ErrPageLoad) ||
		errors.Is(err, respec.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNotDirectory) {
		return ExitIO
	}

	// Usage/config/document errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, respec.ErrUnknownFormat) ||
		errors.Is(err, respec.ErrMalformedAnnotation) ||
		errors.Is(err, respec.ErrInvalidTOCLevel) ||
		errors.Is(err, respec.ErrFrontMatter) ||
		errors.Is(err, respec.ErrEmptyMarkdown) ||
		errors.Is(err, respec.ErrInvalidPageSize) ||
		errors.Is(err, respec.ErrInvalidMargin) ||
		errors.Is(err, respec.ErrStyleNotFound) ||
		errors.Is(err, respec.ErrTemplateNotFound) ||
		errors.Is(err, respec.ErrTemplateRender) ||
		errors.Is(err, respec.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
