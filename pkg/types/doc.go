// Package types defines the error vocabulary shared by the view packages.
//
// Every contract violation detected by a view, iterator or strided view is
// described by an *Error whose Kind is one of a small, stable set of
// categories, so callers can branch on intent rather than message text:
//
//   - ErrKindNullAccess: element access on a null or empty view or iterator.
//   - ErrKindOutOfBounds: index or single-argument slice offset past the end.
//   - ErrKindMalformedSlice: a two-argument slice, cast or strided layout
//     that does not fit the underlying memory.
//   - ErrKindCrossView: iterators from different views combined.
//
// This package has no dependencies beyond the standard library.
package types
