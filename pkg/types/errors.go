package types

import (
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNullAccess     ErrKind = iota // access through a null/empty view or iterator
	ErrKindOutOfBounds                   // index or offset >= size
	ErrKindMalformedSlice                // offset+count or layout exceeds the memory
	ErrKindCrossView                     // iterators with different parents combined
)

// String implements fmt.Stringer.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNullAccess:
		return "null access"
	case ErrKindOutOfBounds:
		return "out of bounds"
	case ErrKindMalformedSlice:
		return "malformed slice"
	case ErrKindCrossView:
		return "cross-view operation"
	default:
		return "UNKNOWN_KIND_" + strconv.Itoa(int(k))
	}
}

// Error is a typed contract violation with the source location of the
// offending call.
type Error struct {
	Kind ErrKind
	Msg  string
	File string // empty when the location is unknown
	Line int
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.File == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s(%d): %s", e.File, e.Line, e.Msg)
}

// Is reports whether target is an *Error of the same kind. It lets the
// sentinels below match errors carrying any message or location.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	// ErrNullAccess indicates an access through a null or empty view.
	ErrNullAccess = &Error{Kind: ErrKindNullAccess, Msg: "view pointer is null or size is zero"}
	// ErrOutOfBounds indicates an index outside [0, size).
	ErrOutOfBounds = &Error{Kind: ErrKindOutOfBounds, Msg: "index is out of bounds"}
	// ErrMalformedSlice indicates a sub-range that does not fit its parent.
	ErrMalformedSlice = &Error{Kind: ErrKindMalformedSlice, Msg: "slice does not fit the view"}
	// ErrCrossView indicates iterators belonging to different views.
	ErrCrossView = &Error{Kind: ErrKindCrossView, Msg: "iterators belong to different views"}
)
