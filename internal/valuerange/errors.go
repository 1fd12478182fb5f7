package valuerange

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrUnsupported is returned (never panicked) by adapters that are asked to
// seed a value from something outside their recognized vocabulary: a
// non-integer type in FromType, a non-integer constant in FromConstant, an
// unrecognized annotation name, an unrecognized BinOp token. Callers treat it
// as "no information available" and fall back to All(width).
var ErrUnsupported = errors.New("valuerange: unsupported input")

// ErrorCode classifies a DomainError the way internal/errors.ErrorType
// classifies a SentraError.
type ErrorCode int

const (
	// ErrInvalidRange: range bounds given out of order (from > to).
	ErrInvalidRange ErrorCode = iota
	// ErrEmptySet: Min/Max called on an empty set.
	ErrEmptySet
	// ErrMalformedRangeSet: from_ranges given an array that is not a valid
	// canonical RangeSet (odd length, unsorted, or fewer than two pieces).
	ErrMalformedRangeSet
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidRange:
		return "InvalidRange"
	case ErrEmptySet:
		return "EmptySet"
	case ErrMalformedRangeSet:
		return "MalformedRangeSet"
	default:
		return "Unknown"
	}
}

// DomainError reports a misuse of the domain's API contract: a caller asked
// for something the value lattice itself forbids, such as constructing a
// range with from > to, or taking Min of Empty. These are programmer errors
// in the consumer, not soundness concerns, so the package panics with one
// rather than threading an error return through every constructor.
type DomainError struct {
	Code    ErrorCode
	Message string
	stack   error // carries a pkg/errors stack trace for debug builds
}

func newDomainError(code ErrorCode, format string, args ...interface{}) *DomainError {
	msg := fmt.Sprintf(format, args...)
	return &DomainError{
		Code:    code,
		Message: msg,
		stack:   pkgerrors.New(msg),
	}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("valuerange: %s: %s", e.Code, e.Message)
}

// StackTrace exposes the pkg/errors-captured call stack for diagnostic
// builds, mirroring internal/errors.SentraError's CallStack.
func (e *DomainError) StackTrace() string {
	return fmt.Sprintf("%+v", e.stack)
}
