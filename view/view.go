package view

import (
	"cmp"
	"iter"
	"unsafe"

	"github.com/joshuapare/arrayview/internal/buf"
	"github.com/joshuapare/arrayview/pkg/types"
	"github.com/joshuapare/arrayview/view/policy"
)

// View is a non-owning reference to n contiguous elements of type T.
//
// The zero value is the null view: no pointer, zero elements. A view with a
// pointer and zero elements is empty but not null.
type View[T any] struct {
	ptr *T
	n   int
}

// Provider is implemented by buffers that expose contiguous storage.
// Of uses the returned values as-is.
type Provider[T any] interface {
	Data() *T
	Len() int
}

// New returns a view of n elements starting at ptr. A nil ptr yields the null
// view whatever n is.
func New[T any](ptr *T, n int) View[T] {
	if n < 0 {
		policy.Fail(types.ErrKindMalformedSlice, "New: negative element count %d", n)
		return View[T]{}
	}
	if ptr == nil {
		return View[T]{}
	}
	return View[T]{ptr: ptr, n: n}
}

// FromSlice returns a view over the elements of s. A nil slice yields the
// null view; a non-nil empty slice yields an empty view.
func FromSlice[T any](s []T) View[T] {
	return View[T]{ptr: unsafe.SliceData(s), n: len(s)}
}

// Of returns a view over the storage exposed by p.
func Of[T any](p Provider[T]) View[T] {
	return New(p.Data(), p.Len())
}

// Len returns the number of elements.
func (v View[T]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View[T]) Empty() bool { return v.n == 0 }

// IsNull reports whether the view has no backing pointer.
func (v View[T]) IsNull() bool { return v.ptr == nil }

// Data returns the pointer to the first element, or nil for the null view.
func (v View[T]) Data() *T { return v.ptr }

// SizeBytes returns Len() * sizeof(T).
func (v View[T]) SizeBytes() int { return v.n * int(sizeOf[T]()) }

// AsSlice returns the viewed elements as a Go slice sharing the same memory.
func (v View[T]) AsSlice() []T {
	if v.ptr == nil {
		return nil
	}
	return unsafe.Slice(v.ptr, v.n)
}

// Reset turns v into the null view.
func (v *View[T]) Reset() { *v = View[T]{} }

// Swap exchanges the contents of v and o.
func (v *View[T]) Swap(o *View[T]) { *v, *o = *o, *v }

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *View[T]) { a.Swap(b) }

// Slice returns the sub-view [offset, Len()). A null or empty view yields the
// null view for any offset; otherwise offset must be in [0, Len()).
func (v View[T]) Slice(offset int) View[T] {
	if v.ptr == nil || v.n == 0 {
		return View[T]{}
	}
	if offset < 0 || offset >= v.n {
		policy.Fail(types.ErrKindOutOfBounds, "Slice: offset %d >= size %d", offset, v.n)
		return View[T]{}
	}
	return v.SliceN(offset, v.n-offset)
}

// SliceN returns the sub-view of count elements starting at offset.
//
// A null or empty view, or count == 0, yields the null view before offset
// is looked at, so SliceN(anything, 0) never fails.
func (v View[T]) SliceN(offset, count int) View[T] {
	if v.ptr == nil || v.n == 0 || count == 0 {
		return View[T]{}
	}
	if offset < 0 || offset >= v.n {
		policy.Fail(types.ErrKindMalformedSlice, "SliceN: offset %d >= size %d", offset, v.n)
		return View[T]{}
	}
	if !buf.RangeFits(offset, count, v.n) {
		policy.Fail(types.ErrKindMalformedSlice, "SliceN: offset %d + count %d > size %d", offset, count, v.n)
		return View[T]{}
	}
	return View[T]{ptr: v.elem(offset), n: count}
}

// At returns a pointer to element i. It always validates the view and the
// index, whatever CheckedAccess says.
func (v View[T]) At(i int) *T {
	if !v.check("At", i) {
		return nil
	}
	return v.elem(i)
}

// Index returns a pointer to element i. The view and index are validated
// only when CheckedAccess is true.
func (v View[T]) Index(i int) *T {
	if CheckedAccess && !v.check("Index", i) {
		return nil
	}
	return v.elem(i)
}

// Front returns a pointer to the first element. Validated like Index.
func (v View[T]) Front() *T {
	if CheckedAccess && !v.checkNotNull("Front") {
		return nil
	}
	return v.ptr
}

// Back returns a pointer to the last element. Validated like Index.
func (v View[T]) Back() *T {
	if CheckedAccess && !v.checkNotNull("Back") {
		return nil
	}
	return v.elem(v.n - 1)
}

// All yields each index with a pointer to its element, front to back.
func (v View[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.elem(i)) {
				return
			}
		}
	}
}

// Values yields each element by value, front to back.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(*v.elem(i)) {
				return
			}
		}
	}
}

// Backward yields each index with a pointer to its element, back to front.
func (v View[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.elem(i)) {
				return
			}
		}
	}
}

// Begin returns an iterator at the first element. The iterator refers to v
// itself, so v must stay addressable and in place while the iterator is used.
func (v *View[T]) Begin() Iterator[T] { return v.iterAt(0) }

// End returns an iterator one past the last element.
func (v *View[T]) End() Iterator[T] { return v.iterAt(v.n) }

// CBegin is Begin as a read-only iterator.
func (v *View[T]) CBegin() ConstIterator[T] { return v.iterAt(0).Const() }

// CEnd is End as a read-only iterator.
func (v *View[T]) CEnd() ConstIterator[T] { return v.iterAt(v.n).Const() }

// RBegin returns a reverse iterator at the last element.
func (v *View[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{base: v.End()} }

// REnd returns a reverse iterator one before the first element.
func (v *View[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{base: v.Begin()} }

// CRBegin is RBegin as a read-only iterator.
func (v *View[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: v.CEnd()}
}

// CREnd is REnd as a read-only iterator.
func (v *View[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: v.CBegin()}
}

// Compare orders views by the address of their first element only, so views
// can serve as sorted keys. It returns -1, 0 or +1.
func (v View[T]) Compare(o View[T]) int {
	return cmp.Compare(uintptr(unsafe.Pointer(v.ptr)), uintptr(unsafe.Pointer(o.ptr)))
}

// Less reports whether v starts at a lower address than o.
func (v View[T]) Less(o View[T]) bool { return v.Compare(o) < 0 }

// Greater reports whether v starts at a higher address than o.
func (v View[T]) Greater(o View[T]) bool { return v.Compare(o) > 0 }

// LessEq reports !v.Greater(o).
func (v View[T]) LessEq(o View[T]) bool { return !v.Greater(o) }

// GreaterEq reports !v.Less(o).
func (v View[T]) GreaterEq(o View[T]) bool { return !v.Less(o) }

// EqualFunc reports whether v and o start at the same address, or have the
// same length and eq holds for every pair of elements.
//
// Same address wins over length: two views of one buffer with different
// lengths are equal.
func (v View[T]) EqualFunc(o View[T], eq func(a, b T) bool) bool {
	if v.ptr == o.ptr {
		return true
	}
	if v.n != o.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if !eq(*v.elem(i), *o.elem(i)) {
			return false
		}
	}
	return true
}

// Equal is EqualFunc with ==.
func Equal[T comparable](a, b View[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func (v View[T]) elem(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(v.ptr), i*int(sizeOf[T]())))
}

func (v *View[T]) iterAt(i int) Iterator[T] {
	if v.ptr == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{parent: v, idx: i}
}

func (v View[T]) checkNotNull(op string) bool {
	if v.ptr == nil || v.n == 0 {
		policy.Fail(types.ErrKindNullAccess, "%s: view pointer is null or size is zero", op)
		return false
	}
	return true
}

func (v View[T]) check(op string, i int) bool {
	if !v.checkNotNull(op) {
		return false
	}
	if i < 0 || i >= v.n {
		policy.Fail(types.ErrKindOutOfBounds, "%s: index %d is out of bounds for size %d", op, i, v.n)
		return false
	}
	return true
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func alignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}
