package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arrayview/pkg/types"
)

func TestIteratorLaws(t *testing.T) {
	v := FromSlice(sample())
	n := v.Len()

	for k := 0; k <= n; k++ {
		require.Equal(t, k, v.Begin().Add(k).Diff(v.Begin()))
	}
	require.True(t, v.Begin().Add(n).Equal(v.End()))
	require.True(t, v.End().Sub(n).Equal(v.Begin()))
	require.Equal(t, n, v.End().Diff(v.Begin()))
	require.Equal(t, -n, v.Begin().Diff(v.End()))
}

func TestIteratorTraversal(t *testing.T) {
	data := sample()
	v := FromSlice(data)

	var got []int
	for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
		got = append(got, it.Value())
	}
	require.Equal(t, data, got)

	for it := v.Begin(); it.Less(v.End()); it.Advance(2) {
		*it.Ref() += 1
	}
	require.Equal(t, []int{1, 10, 21, 30, 41, 50}, data)
}

func TestIteratorPostIncDec(t *testing.T) {
	v := FromSlice(sample())
	it := v.Begin()

	old := it.PostInc()
	require.Equal(t, 0, old.Pos())
	require.Equal(t, 1, it.Pos())
	require.Equal(t, 10, it.Value())

	old = it.PostDec()
	require.Equal(t, 1, old.Pos())
	require.Equal(t, 0, it.Pos())

	it.Dec()
	require.Equal(t, -1, it.Pos(), "index may leave the range transiently")
	it.Retreat(-3)
	require.Equal(t, 2, it.Pos())
}

func TestIteratorComparisons(t *testing.T) {
	v := FromSlice(sample())
	a := v.Begin().Add(1)
	b := v.Begin().Add(4)

	require.True(t, a.Less(b))
	require.True(t, b.Greater(a))
	require.True(t, a.LessEq(b))
	require.True(t, a.LessEq(a))
	require.True(t, b.GreaterEq(a))
	require.False(t, a.Equal(b))
	require.True(t, a.NotEqual(b))
}

func TestIteratorIndexedAccess(t *testing.T) {
	v := FromSlice(sample())
	it := v.Begin().Add(2)

	require.Equal(t, 40, *it.At(2))
	require.Equal(t, 10, *it.At(-1))
	requireFails(t, types.ErrOutOfBounds, func() { it.At(4) })
	requireFails(t, types.ErrOutOfBounds, func() { it.At(-3) })
}

func TestIteratorDereferenceAlwaysChecked(t *testing.T) {
	v := FromSlice(sample())
	requireFails(t, types.ErrOutOfBounds, func() { v.End().Ref() })
	requireFails(t, types.ErrOutOfBounds, func() { v.Begin().Sub(1).Value() })
	requireFails(t, types.ErrOutOfBounds, func() { v.End().At(0) })

	var null Iterator[int]
	requireFails(t, types.ErrNullAccess, func() { null.Ref() })

	empty := FromSlice([]int{})
	requireFails(t, types.ErrNullAccess, func() { empty.Begin().Value() })
}

func TestNullIterator(t *testing.T) {
	var null View[int]
	it := null.Begin()
	require.True(t, it.IsNull())
	require.True(t, it.Equal(Iterator[int]{}))

	data := sample()
	v := FromSlice(data)
	require.False(t, v.Begin().IsNull())
}

func TestNullIteratorArithmeticChecked(t *testing.T) {
	requireChecked(t)
	var it Iterator[int]
	requireFails(t, types.ErrNullAccess, func() { it.Inc() })
	requireFails(t, types.ErrNullAccess, func() { it.Sub(1) })
}

func TestCrossViewOperations(t *testing.T) {
	requireChecked(t)
	data := sample()
	a := FromSlice(data)
	b := FromSlice(data) // same memory, different view instance

	requireFails(t, types.ErrCrossView, func() { a.Begin().Diff(b.Begin()) })
	requireFails(t, types.ErrCrossView, func() { a.Begin().Equal(b.Begin()) })
	requireFails(t, types.ErrCrossView, func() { a.Begin().Less(b.End()) })
	requireFails(t, types.ErrCrossView, func() { a.Begin().GreaterEq(b.End()) })
	requireFails(t, types.ErrCrossView, func() {
		x, y := a.Begin(), b.Begin()
		x.Swap(&y)
	})
}

func TestIteratorSwap(t *testing.T) {
	v := FromSlice(sample())
	x, y := v.Begin(), v.End()
	x.Swap(&y)
	require.Equal(t, 6, x.Pos())
	require.Equal(t, 0, y.Pos())
}

func TestIteratorFollowsParentView(t *testing.T) {
	data := sample()
	v := FromSlice(data)
	it := v.Begin().Add(5)
	require.Equal(t, 50, it.Value())

	// The iterator reads through the view itself; shrinking the view
	// invalidates positions past the new end.
	v = v.SliceN(0, 3)
	requireFails(t, types.ErrOutOfBounds, func() { it.Value() })
}

func TestConstIterator(t *testing.T) {
	data := sample()
	v := FromSlice(data)

	c := v.Begin().Add(1).Const()
	require.Equal(t, 10, c.Value())
	require.Equal(t, 30, c.At(2))
	require.True(t, c.Equal(v.CBegin().Add(1)))
	require.Equal(t, 5, v.CEnd().Diff(c))

	var got []int
	for it := v.CBegin(); it.NotEqual(v.CEnd()); it.Inc() {
		got = append(got, it.Value())
	}
	require.Equal(t, data, got)

	old := c.PostInc()
	require.Equal(t, 1, old.Pos())
	require.Equal(t, 2, c.Pos())
	require.True(t, old.Less(c))
	require.True(t, c.Greater(old))
	requireFails(t, types.ErrOutOfBounds, func() { v.CEnd().Value() })
}

func TestReverseIterator(t *testing.T) {
	data := sample()
	v := FromSlice(data)

	var got []int
	for it := v.RBegin(); it.NotEqual(v.REnd()); it.Inc() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{50, 40, 30, 20, 10, 0}, got)

	r := v.RBegin()
	require.Equal(t, 30, *r.At(2))
	require.Equal(t, 6, v.REnd().Diff(v.RBegin()))
	require.True(t, v.RBegin().Less(v.REnd()))
	require.True(t, r.Base().Equal(v.End()))

	*r.Ref() = 55
	require.Equal(t, 55, data[5])

	requireFails(t, types.ErrOutOfBounds, func() { v.REnd().Value() })

	var cgot []int
	for it := v.CRBegin(); it.NotEqual(v.CREnd()); it.Inc() {
		cgot = append(cgot, it.Value())
	}
	require.Equal(t, []int{55, 40, 30, 20, 10, 0}, cgot)
	require.Equal(t, 40, v.RBegin().Const().At(1))
}

func TestReverseOfNullView(t *testing.T) {
	var null View[int]
	require.True(t, null.RBegin().Equal(null.REnd()))
	require.True(t, null.RBegin().IsNull())
}

func TestConstReverseIteratorArithmeticAndOrder(t *testing.T) {
	v := FromSlice(sample())
	first, last := v.CRBegin(), v.CREnd()

	require.True(t, last.Greater(first))
	require.False(t, first.Greater(last))
	require.True(t, first.LessEq(last))
	require.True(t, first.LessEq(first))
	require.True(t, last.GreaterEq(first))
	require.True(t, first.GreaterEq(first))

	it := v.CRBegin()
	it.Advance(2)
	require.Equal(t, 30, it.Value())
	it.Retreat(1)
	require.Equal(t, 40, it.Value())

	old := it.PostInc()
	require.Equal(t, 40, old.Value())
	require.Equal(t, 30, it.Value())
	old = it.PostDec()
	require.Equal(t, 30, old.Value())
	require.Equal(t, 40, it.Value())
	require.Equal(t, 1, it.Diff(first))

	a, b := v.CRBegin(), v.CREnd()
	a.Swap(&b)
	require.True(t, a.Equal(v.CREnd()))
	require.True(t, b.Equal(v.CRBegin()))

	r, s := v.RBegin(), v.REnd()
	r.Swap(&s)
	require.True(t, r.Equal(v.REnd()))
}

func TestConstReverseSwapAcrossViews(t *testing.T) {
	requireChecked(t)
	data := sample()
	a := FromSlice(data)
	b := FromSlice(data)
	requireFails(t, types.ErrCrossView, func() {
		x, y := a.CRBegin(), b.CRBegin()
		x.Swap(&y)
	})
}
