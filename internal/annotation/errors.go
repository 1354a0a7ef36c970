package annotation

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark/parser"
	"go.uber.org/multierr"
)

// ErrMalformedAnnotation indicates a directive with no valid attachment target.
var ErrMalformedAnnotation = errors.New("malformed annotation")

// MalformedError locates a directive that could not be attached.
type MalformedError struct {
	Line    int    // 1-based
	Column  int    // 1-based
	Payload string // raw payload between "{:&" and "}"
	Reason  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v at line %d, column %d: %s", ErrMalformedAnnotation, e.Line, e.Column, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedAnnotation.
func (e *MalformedError) Unwrap() error {
	return ErrMalformedAnnotation
}

var errorsKey = parser.NewContextKey()

// addError records err in the parse context.
func addError(pc parser.Context, err error) {
	prev, _ := pc.Get(errorsKey).(error)
	pc.Set(errorsKey, multierr.Append(prev, err))
}

// Err returns every malformed directive found while parsing with pc,
// combined with multierr, or nil.
func Err(pc parser.Context) error {
	err, _ := pc.Get(errorsKey).(error)
	return err
}
