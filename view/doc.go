// Package view provides non-owning views over contiguous and strided memory.
//
// # Overview
//
// A View[T] is a pointer and an element count. It reads and writes the
// elements of an existing buffer in place: nothing is copied and the view
// never owns, grows or frees the memory behind it. Strided[T] exposes one
// field of a repeated record (a vertex position, a column of a fixed-size
// row) as if it were an array of its own.
//
// # Checked and fast access
//
// Every accessor exists in two flavours:
//
//   - At, Slice, SliceN, iterator Ref/Value/At, strided At/Front/Back always
//     validate and report violations.
//   - Index, Front, Back and strided Index validate only when CheckedAccess
//     is true (the default). Building with -tags arrayview_unchecked turns
//     those checks off; a violation is then undefined behaviour.
//
// Violations are reported through the process-wide policy in package
// view/policy: either log and exit (Abort) or panic with a *types.Error
// (Raise).
//
// # Lifetime
//
// Views over Go-allocated memory keep that memory reachable, so they cannot
// dangle. Views over memory the runtime does not manage (see view/mapped)
// become invalid when that memory is released, and nothing detects it.
//
// # Usage Example
//
//	samples := []int32{0, 10, 20, 30, 40, 50}
//	v := view.FromSlice(samples)
//
//	mid := v.SliceN(2, 3) // {20, 30, 40}
//	*mid.At(0) = 21       // writes samples[2]
//
//	for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
//	    fmt.Println(it.Value())
//	}
//
// Views and iterators are plain values with no internal synchronisation;
// concurrent writes through aliasing views are data races exactly as with
// raw slices.
package view
