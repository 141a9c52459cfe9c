//go:build arrayview_unchecked

package view

// CheckedAccess reports whether the fast accessors (Index, Front, Back,
// strided Index) and the iterator same-parent checks validate their
// preconditions.
const CheckedAccess = false
