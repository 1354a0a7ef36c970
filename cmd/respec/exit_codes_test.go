package main

// Notes:
// - exitCodeFor: every sentinel the CLI can surface, plus wrapped and
//   aggregated forms to check the errors.Is chain.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"go.uber.org/multierr"

	"github.com/alnah/go-respec"
	"github.com/alnah/go-respec/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", respec.ErrBrowserConnect, ExitBrowser},
		{"page create", respec.ErrPageCreate, ExitBrowser},
		{"page load", respec.ErrPageLoad, ExitBrowser},
		{"pdf generation", respec.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("failed: %w", respec.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"not a directory", ErrNotDirectory, ExitIO},

		// Usage/config/document errors (exit 2)
		{"usage", usageError(errors.New("unknown flag: --nope")), ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config invalid", config.ErrConfigInvalid, ExitUsage},
		{"unknown format", respec.ErrUnknownFormat, ExitUsage},
		{"malformed annotation", &respec.MalformedError{Line: 1, Column: 1}, ExitUsage},
		{"invalid toc level", respec.ErrInvalidTOCLevel, ExitUsage},
		{"front matter", respec.ErrFrontMatter, ExitUsage},
		{"empty markdown", respec.ErrEmptyMarkdown, ExitUsage},
		{"invalid page size", respec.ErrInvalidPageSize, ExitUsage},
		{"style not found", respec.ErrStyleNotFound, ExitUsage},
		{"template not found", respec.ErrTemplateNotFound, ExitUsage},
		{"invalid asset path", respec.ErrInvalidAssetPath, ExitUsage},

		// Aggregated batch failures pick the most specific class present
		{"batch with browser error", &batchError{failed: 2, total: 3, err: multierr.Combine(ErrReadMarkdown, respec.ErrBrowserConnect)}, ExitBrowser},
		{"batch with annotation error", &batchError{failed: 1, total: 2, err: multierr.Combine(&respec.MalformedError{})}, ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0-2 must follow Unix conventions")
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("custom exit code %d collides with shell-reserved codes", code)
		}
	}
}
