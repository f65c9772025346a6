package regolith

import (
	"errors"
	"fmt"
)

// Sentinel errors describing which precondition a construction or render
// call violated. Test with errors.Is.
var (
	ErrEmptyContent       = errors.New("regolith: content is nil or empty")
	ErrNegativeCount      = errors.New("regolith: count is negative")
	ErrInvertedRange      = errors.New("regolith: range upper bound is less than lower bound")
	ErrCharOutOfRange     = errors.New("regolith: character is outside of the 16-bit range")
	ErrInvalidUTF8        = errors.New("regolith: text is not valid UTF-8")
	ErrInvalidGroupName   = errors.New("regolith: invalid group name")
	ErrInvalidGroupNumber = errors.New("regolith: invalid group number")
	ErrEmptyCharGrouping  = errors.New("regolith: character grouping is empty")
	ErrConflictingOptions = errors.New("regolith: option is both applied and disabled")
	ErrNoOptions          = errors.New("regolith: no option is applied or disabled")
	ErrUnknownOption      = errors.New("regolith: unknown option")
	ErrInvalidUnicode     = errors.New("regolith: unknown Unicode category or block")
	ErrInvalidComment     = errors.New("regolith: invalid comment text")
	ErrNotQuantifier      = errors.New("regolith: last node is not a quantifier")
	ErrInvalidSettings    = errors.New("regolith: invalid settings")
)

// ArgumentError reports a rejected argument. Op names the constructor or
// render step that rejected it.
type ArgumentError struct {
	Op     string
	Err    error
	Detail string
}

func (e *ArgumentError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

var _ error = (*ArgumentError)(nil)

func newArgumentError(op string, err error, detailFormat string, args ...any) *ArgumentError {
	e := &ArgumentError{Op: op, Err: err}
	if detailFormat != "" {
		e.Detail = fmt.Sprintf(detailFormat, args...)
	}
	return e
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
