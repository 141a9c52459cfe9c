package view

import (
	"github.com/joshuapare/arrayview/pkg/types"
	"github.com/joshuapare/arrayview/view/policy"
)

// Iterator is a random-access position inside exactly one View.
//
// It stores a reference to the view it came from and a signed index. The
// index may leave [0, Len()) during arithmetic; only dereferencing requires
// it to be inside. The zero value is the null iterator.
type Iterator[T any] struct {
	parent *View[T]
	idx    int
}

// IsNull reports whether the iterator has no parent view.
func (it Iterator[T]) IsNull() bool { return it.parent == nil }

// Pos returns the current index.
func (it Iterator[T]) Pos() int { return it.idx }

// Add returns the iterator moved n elements forward.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.Advance(n)
	return it
}

// Sub returns the iterator moved n elements back.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.Retreat(n)
	return it
}

// Advance moves the iterator n elements forward in place.
func (it *Iterator[T]) Advance(n int) {
	if CheckedAccess && it.parent == nil {
		policy.Fail(types.ErrKindNullAccess, "Advance: incrementing a null iterator")
		return
	}
	it.idx += n
}

// Retreat moves the iterator n elements back in place.
func (it *Iterator[T]) Retreat(n int) {
	if CheckedAccess && it.parent == nil {
		policy.Fail(types.ErrKindNullAccess, "Retreat: decrementing a null iterator")
		return
	}
	it.idx -= n
}

// Inc moves the iterator one element forward.
func (it *Iterator[T]) Inc() { it.Advance(1) }

// Dec moves the iterator one element back.
func (it *Iterator[T]) Dec() { it.Retreat(1) }

// PostInc moves the iterator forward and returns its previous value.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.Advance(1)
	return old
}

// PostDec moves the iterator back and returns its previous value.
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.Retreat(1)
	return old
}

// Diff returns it - o in elements.
func (it Iterator[T]) Diff(o Iterator[T]) int {
	if CheckedAccess && !it.sameParent("Diff", o) {
		return 0
	}
	return it.idx - o.idx
}

// Equal reports whether both iterators are at the same index.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	if CheckedAccess && !it.sameParent("Equal", o) {
		return false
	}
	return it.idx == o.idx
}

// NotEqual is !Equal.
func (it Iterator[T]) NotEqual(o Iterator[T]) bool { return !it.Equal(o) }

// Less reports whether it is before o.
func (it Iterator[T]) Less(o Iterator[T]) bool {
	if CheckedAccess && !it.sameParent("Less", o) {
		return false
	}
	return it.idx < o.idx
}

// Greater reports whether it is after o.
func (it Iterator[T]) Greater(o Iterator[T]) bool {
	if CheckedAccess && !it.sameParent("Greater", o) {
		return false
	}
	return it.idx > o.idx
}

// LessEq is !Greater.
func (it Iterator[T]) LessEq(o Iterator[T]) bool { return !it.Greater(o) }

// GreaterEq is !Less.
func (it Iterator[T]) GreaterEq(o Iterator[T]) bool { return !it.Less(o) }

// Swap exchanges it and o, which must belong to the same view.
func (it *Iterator[T]) Swap(o *Iterator[T]) {
	if CheckedAccess && !it.sameParent("Swap", *o) {
		return
	}
	*it, *o = *o, *it
}

// Ref returns a pointer to the current element. The position is always
// validated.
func (it Iterator[T]) Ref() *T {
	if !it.dereferenceable("Ref") {
		return nil
	}
	return it.parent.elem(it.idx)
}

// Value returns the current element.
func (it Iterator[T]) Value() T {
	if p := it.Ref(); p != nil {
		return *p
	}
	var zero T
	return zero
}

// At returns a pointer to the element k positions from the current one. Both
// the current position and the target are always validated.
func (it Iterator[T]) At(k int) *T {
	if !it.dereferenceable("At") {
		return nil
	}
	i := it.idx + k
	if i < 0 || i >= it.parent.n {
		policy.Fail(types.ErrKindOutOfBounds, "At: index %d is out of bounds for size %d", i, it.parent.n)
		return nil
	}
	return it.parent.elem(i)
}

// Const converts the iterator into a read-only one over the same view. There
// is no conversion back.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

func (it Iterator[T]) sameParent(op string, o Iterator[T]) bool {
	if it.parent != o.parent {
		policy.Fail(types.ErrKindCrossView, "%s: iterators belong to different views", op)
		return false
	}
	return true
}

func (it Iterator[T]) dereferenceable(op string) bool {
	if it.parent == nil || it.parent.ptr == nil || it.parent.n == 0 {
		policy.Fail(types.ErrKindNullAccess, "%s: iterator not dereferenceable", op)
		return false
	}
	if it.idx < 0 || it.idx >= it.parent.n {
		policy.Fail(types.ErrKindOutOfBounds, "%s: iterator position %d is out of bounds for size %d", op, it.idx, it.parent.n)
		return false
	}
	return true
}

// ConstIterator is an Iterator that only reads.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// IsNull reports whether the iterator has no parent view.
func (c ConstIterator[T]) IsNull() bool { return c.it.IsNull() }

// Pos returns the current index.
func (c ConstIterator[T]) Pos() int { return c.it.idx }

// Add returns the iterator moved n elements forward.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Add(n)} }

// Sub returns the iterator moved n elements back.
func (c ConstIterator[T]) Sub(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Sub(n)} }

// Advance moves the iterator n elements forward in place.
func (c *ConstIterator[T]) Advance(n int) { c.it.Advance(n) }

// Retreat moves the iterator n elements back in place.
func (c *ConstIterator[T]) Retreat(n int) { c.it.Retreat(n) }

// Inc moves the iterator one element forward.
func (c *ConstIterator[T]) Inc() { c.it.Advance(1) }

// Dec moves the iterator one element back.
func (c *ConstIterator[T]) Dec() { c.it.Retreat(1) }

// PostInc moves the iterator forward and returns its previous value.
func (c *ConstIterator[T]) PostInc() ConstIterator[T] {
	return ConstIterator[T]{it: c.it.PostInc()}
}

// PostDec moves the iterator back and returns its previous value.
func (c *ConstIterator[T]) PostDec() ConstIterator[T] {
	return ConstIterator[T]{it: c.it.PostDec()}
}

// Diff returns c - o in elements.
func (c ConstIterator[T]) Diff(o ConstIterator[T]) int { return c.it.Diff(o.it) }

// Equal reports whether both iterators are at the same index.
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.Equal(o.it) }

// NotEqual is !Equal.
func (c ConstIterator[T]) NotEqual(o ConstIterator[T]) bool { return !c.it.Equal(o.it) }

// Less reports whether c is before o.
func (c ConstIterator[T]) Less(o ConstIterator[T]) bool { return c.it.Less(o.it) }

// Greater reports whether c is after o.
func (c ConstIterator[T]) Greater(o ConstIterator[T]) bool { return c.it.Greater(o.it) }

// LessEq is !Greater.
func (c ConstIterator[T]) LessEq(o ConstIterator[T]) bool { return c.it.LessEq(o.it) }

// GreaterEq is !Less.
func (c ConstIterator[T]) GreaterEq(o ConstIterator[T]) bool { return c.it.GreaterEq(o.it) }

// Swap exchanges c and o, which must belong to the same view.
func (c *ConstIterator[T]) Swap(o *ConstIterator[T]) { c.it.Swap(&o.it) }

// Value returns the current element. The position is always validated.
func (c ConstIterator[T]) Value() T {
	if !c.it.dereferenceable("Value") {
		var zero T
		return zero
	}
	return *c.it.parent.elem(c.it.idx)
}

// At returns the element k positions from the current one.
func (c ConstIterator[T]) At(k int) T {
	if p := c.it.At(k); p != nil {
		return *p
	}
	var zero T
	return zero
}
