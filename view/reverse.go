package view

// ReverseIterator walks a view back to front. It wraps a forward iterator and
// reads the element just before it, so RBegin wraps End and REnd wraps Begin.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Reverse wraps it as a reverse iterator.
func Reverse[T any](it Iterator[T]) ReverseIterator[T] { return ReverseIterator[T]{base: it} }

// Base returns the wrapped forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// IsNull reports whether the iterator has no parent view.
func (r ReverseIterator[T]) IsNull() bool { return r.base.IsNull() }

// Add returns the iterator moved n elements towards the front of the view.
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Sub(n)}
}

// Sub returns the iterator moved n elements towards the back of the view.
func (r ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Add(n)}
}

// Advance is Add in place.
func (r *ReverseIterator[T]) Advance(n int) { r.base.Retreat(n) }

// Retreat is Sub in place.
func (r *ReverseIterator[T]) Retreat(n int) { r.base.Advance(n) }

// Inc moves one element towards the front of the view.
func (r *ReverseIterator[T]) Inc() { r.base.Retreat(1) }

// Dec moves one element towards the back of the view.
func (r *ReverseIterator[T]) Dec() { r.base.Advance(1) }

// PostInc is Inc returning the previous value.
func (r *ReverseIterator[T]) PostInc() ReverseIterator[T] {
	old := *r
	r.base.Retreat(1)
	return old
}

// PostDec is Dec returning the previous value.
func (r *ReverseIterator[T]) PostDec() ReverseIterator[T] {
	old := *r
	r.base.Advance(1)
	return old
}

// Diff returns r - o in steps of this iterator.
func (r ReverseIterator[T]) Diff(o ReverseIterator[T]) int { return o.base.Diff(r.base) }

// Equal reports whether both iterators are at the same position.
func (r ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return r.base.Equal(o.base) }

// NotEqual is !Equal.
func (r ReverseIterator[T]) NotEqual(o ReverseIterator[T]) bool { return !r.base.Equal(o.base) }

// Less reports whether r comes before o in reverse order.
func (r ReverseIterator[T]) Less(o ReverseIterator[T]) bool { return r.base.Greater(o.base) }

// Greater reports whether r comes after o in reverse order.
func (r ReverseIterator[T]) Greater(o ReverseIterator[T]) bool { return r.base.Less(o.base) }

// LessEq is !Greater.
func (r ReverseIterator[T]) LessEq(o ReverseIterator[T]) bool { return !r.Greater(o) }

// GreaterEq is !Less.
func (r ReverseIterator[T]) GreaterEq(o ReverseIterator[T]) bool { return !r.Less(o) }

// Swap exchanges r and o, which must belong to the same view.
func (r *ReverseIterator[T]) Swap(o *ReverseIterator[T]) { r.base.Swap(&o.base) }

// Ref returns a pointer to the element before the base position.
func (r ReverseIterator[T]) Ref() *T { return r.base.Sub(1).Ref() }

// Value returns the element before the base position.
func (r ReverseIterator[T]) Value() T { return r.base.Sub(1).Value() }

// At returns a pointer to the element k steps further in reverse order.
func (r ReverseIterator[T]) At(k int) *T { return r.Add(k).Ref() }

// Const converts the iterator into a read-only one. There is no conversion
// back.
func (r ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Const()}
}

// ConstReverseIterator is a ReverseIterator that only reads.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// Base returns the wrapped forward iterator.
func (r ConstReverseIterator[T]) Base() ConstIterator[T] { return r.base }

// IsNull reports whether the iterator has no parent view.
func (r ConstReverseIterator[T]) IsNull() bool { return r.base.IsNull() }

// Add returns the iterator moved n elements towards the front of the view.
func (r ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Sub(n)}
}

// Sub returns the iterator moved n elements towards the back of the view.
func (r ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Add(n)}
}

// Advance is Add in place.
func (r *ConstReverseIterator[T]) Advance(n int) { r.base.Retreat(n) }

// Retreat is Sub in place.
func (r *ConstReverseIterator[T]) Retreat(n int) { r.base.Advance(n) }

// Inc moves one element towards the front of the view.
func (r *ConstReverseIterator[T]) Inc() { r.base.Retreat(1) }

// Dec moves one element towards the back of the view.
func (r *ConstReverseIterator[T]) Dec() { r.base.Advance(1) }

// PostInc is Inc returning the previous value.
func (r *ConstReverseIterator[T]) PostInc() ConstReverseIterator[T] {
	old := *r
	r.base.Retreat(1)
	return old
}

// PostDec is Dec returning the previous value.
func (r *ConstReverseIterator[T]) PostDec() ConstReverseIterator[T] {
	old := *r
	r.base.Advance(1)
	return old
}

// Diff returns r - o in steps of this iterator.
func (r ConstReverseIterator[T]) Diff(o ConstReverseIterator[T]) int {
	return o.base.Diff(r.base)
}

// Equal reports whether both iterators are at the same position.
func (r ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool {
	return r.base.Equal(o.base)
}

// NotEqual is !Equal.
func (r ConstReverseIterator[T]) NotEqual(o ConstReverseIterator[T]) bool {
	return !r.base.Equal(o.base)
}

// Less reports whether r comes before o in reverse order.
func (r ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool {
	return r.base.Greater(o.base)
}

// Greater reports whether r comes after o in reverse order.
func (r ConstReverseIterator[T]) Greater(o ConstReverseIterator[T]) bool {
	return r.base.Less(o.base)
}

// LessEq is !Greater.
func (r ConstReverseIterator[T]) LessEq(o ConstReverseIterator[T]) bool { return !r.Greater(o) }

// GreaterEq is !Less.
func (r ConstReverseIterator[T]) GreaterEq(o ConstReverseIterator[T]) bool { return !r.Less(o) }

// Swap exchanges r and o, which must belong to the same view.
func (r *ConstReverseIterator[T]) Swap(o *ConstReverseIterator[T]) { r.base.Swap(&o.base) }

// Value returns the element before the base position.
func (r ConstReverseIterator[T]) Value() T { return r.base.Sub(1).Value() }

// At returns the element k steps further in reverse order.
func (r ConstReverseIterator[T]) At(k int) T { return r.Add(k).Value() }
