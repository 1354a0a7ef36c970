package main

import (
	"context"
	"errors"

	"github.com/alnah/go-respec"
	"github.com/alnah/go-respec/internal/config"
	"github.com/alnah/go-respec/internal/hints"
	"github.com/alnah/go-respec/internal/pipeline"
)

// hintFor returns the advice appended to err on stderr, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, respec.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, respec.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(nf.Tried)
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, respec.ErrUnknownFormat):
		return hints.ForAvailable(pipeline.FormatNames())
	case errors.Is(err, respec.ErrMalformedAnnotation):
		return hints.ForMalformedAnnotation()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrUsage):
		return hints.ForUsage()
	}
	return ""
}
