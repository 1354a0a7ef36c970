package respec

import (
	"errors"

	"github.com/alnah/go-respec/internal/annotation"
	"github.com/alnah/go-respec/internal/assets"
	"github.com/alnah/go-respec/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPoolClosed     = errors.New("converter pool is closed")

	// Conversion errors.
	ErrUnknownFormat   = pipeline.ErrUnknownFormat
	ErrHTMLConversion  = pipeline.ErrHTMLConversion
	ErrInvalidTOCLevel = pipeline.ErrInvalidTOCLevel
	ErrFrontMatter     = pipeline.ErrFrontMatter

	// ErrMalformedAnnotation is matched by every error Convert returns for
	// {:& ...} directives that have no block to attach to. Use errors.As with
	// *MalformedError to get their positions.
	ErrMalformedAnnotation = annotation.ErrMalformedAnnotation

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrTemplateRender   = assets.ErrTemplateRender
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// MalformedError locates one directive that could not be attached.
type MalformedError = annotation.MalformedError
