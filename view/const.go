package view

import "iter"

// ConstView is a read-only View. Accessors return copies of elements, never
// pointers into the buffer. It is obtained from View.Const; no conversion
// back to a writable view exists.
type ConstView[T any] struct {
	v View[T]
}

// Const returns a read-only view of the same elements.
func (v View[T]) Const() ConstView[T] { return ConstView[T]{v: v} }

// Len returns the number of elements.
func (c ConstView[T]) Len() int { return c.v.n }

// Empty reports whether the view has no elements.
func (c ConstView[T]) Empty() bool { return c.v.n == 0 }

// IsNull reports whether the view has no backing pointer.
func (c ConstView[T]) IsNull() bool { return c.v.ptr == nil }

// SizeBytes returns Len() * sizeof(T).
func (c ConstView[T]) SizeBytes() int { return c.v.SizeBytes() }

// Reset turns c into the null view.
func (c *ConstView[T]) Reset() { c.v.Reset() }

// Swap exchanges the contents of c and o.
func (c *ConstView[T]) Swap(o *ConstView[T]) { c.v.Swap(&o.v) }

// Slice is View.Slice.
func (c ConstView[T]) Slice(offset int) ConstView[T] { return ConstView[T]{v: c.v.Slice(offset)} }

// SliceN is View.SliceN.
func (c ConstView[T]) SliceN(offset, count int) ConstView[T] {
	return ConstView[T]{v: c.v.SliceN(offset, count)}
}

// At returns element i, always validated.
func (c ConstView[T]) At(i int) T { return deref(c.v.At(i)) }

// Index returns element i, validated only when CheckedAccess is true.
func (c ConstView[T]) Index(i int) T { return deref(c.v.Index(i)) }

// Front returns the first element.
func (c ConstView[T]) Front() T { return deref(c.v.Front()) }

// Back returns the last element.
func (c ConstView[T]) Back() T { return deref(c.v.Back()) }

// CopyTo copies the elements into dst and returns how many were copied.
func (c ConstView[T]) CopyTo(dst []T) int { return copy(dst, c.v.AsSlice()) }

// All yields each index with its element, front to back.
func (c ConstView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, p := range c.v.All() {
			if !yield(i, *p) {
				return
			}
		}
	}
}

// Values yields each element, front to back.
func (c ConstView[T]) Values() iter.Seq[T] { return c.v.Values() }

// Begin returns a read-only iterator at the first element, anchored to c.
func (c *ConstView[T]) Begin() ConstIterator[T] { return c.v.iterAt(0).Const() }

// End returns a read-only iterator one past the last element.
func (c *ConstView[T]) End() ConstIterator[T] { return c.v.iterAt(c.v.n).Const() }

// RBegin returns a read-only reverse iterator at the last element.
func (c *ConstView[T]) RBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: c.End()}
}

// REnd returns a read-only reverse iterator one before the first element.
func (c *ConstView[T]) REnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: c.Begin()}
}

// Compare orders views by address; see View.Compare.
func (c ConstView[T]) Compare(o ConstView[T]) int { return c.v.Compare(o.v) }

// SameData reports whether c and o start at the same address.
func (c ConstView[T]) SameData(o ConstView[T]) bool { return c.v.ptr == o.v.ptr }

// EqualFunc is View.EqualFunc.
func (c ConstView[T]) EqualFunc(o ConstView[T], eq func(a, b T) bool) bool {
	return c.v.EqualFunc(o.v, eq)
}

// EqualConst is Equal for read-only views.
func EqualConst[T comparable](a, b ConstView[T]) bool { return Equal(a.v, b.v) }

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
