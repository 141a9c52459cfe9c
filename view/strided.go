package view

import (
	"iter"
	"unsafe"

	"github.com/joshuapare/arrayview/internal/buf"
	"github.com/joshuapare/arrayview/pkg/types"
	"github.com/joshuapare/arrayview/view/policy"
)

// Strided exposes one field of a repeated record as an array of T.
//
// Element i lives at base + i*stride + offset. Offset and stride are fixed at
// construction and satisfy offset+sizeof(T) <= stride. Len is derived as
// SizeBytes()/Stride(); the typed constructors take the stride from the
// record type, so it always equals the record size.
//
//	type Vertex struct{ Pos, Normal [3]float32 }
//	normals := view.FieldOf(verts, func(v *Vertex) *[3]float32 { return &v.Normal })
type Strided[T any] struct {
	base      unsafe.Pointer
	sizeBytes uintptr
	offset    uintptr
	stride    uintptr
}

// NewStrided projects the field at byte offset of every record.
func NewStrided[T, S any](records []S, offset uintptr) Strided[T] {
	stride := sizeOf[S]()
	if !validLayout[T]("NewStrided", offset, stride) {
		return Strided[T]{}
	}
	return Strided[T]{
		base:      unsafe.Pointer(unsafe.SliceData(records)),
		sizeBytes: uintptr(len(records)) * stride,
		offset:    offset,
		stride:    stride,
	}
}

// FieldOf projects the field selected by field, which must return a pointer
// into the record it is given.
func FieldOf[S, T any](records []S, field func(*S) *T) Strided[T] {
	var rec *S
	if len(records) > 0 {
		rec = &records[0]
	} else {
		rec = new(S)
	}
	start := uintptr(unsafe.Pointer(rec))
	f := uintptr(unsafe.Pointer(field(rec)))
	if f < start || f-start >= sizeOf[S]() {
		policy.Fail(types.ErrKindMalformedSlice, "FieldOf: selected field lies outside the record")
		return Strided[T]{}
	}
	return NewStrided[T](records, f-start)
}

// NewStridedBytes projects a field out of raw records in b, such as a mapped
// file. Trailing bytes that do not make a whole record are not addressable.
func NewStridedBytes[T any](b View[byte], offset, stride uintptr) Strided[T] {
	if !validLayout[T]("NewStridedBytes", offset, stride) {
		return Strided[T]{}
	}
	return Strided[T]{
		base:      unsafe.Pointer(b.ptr),
		sizeBytes: uintptr(b.n),
		offset:    offset,
		stride:    stride,
	}
}

func validLayout[T any](op string, offset, stride uintptr) bool {
	if stride == 0 {
		policy.Fail(types.ErrKindMalformedSlice, "%s: zero stride", op)
		return false
	}
	if offset >= stride {
		policy.Fail(types.ErrKindMalformedSlice, "%s: offset %d >= stride %d", op, offset, stride)
		return false
	}
	if !buf.RangeFits(int(offset), int(sizeOf[T]()), int(stride)) {
		policy.Fail(types.ErrKindMalformedSlice, "%s: field of %d bytes at offset %d exceeds stride %d",
			op, sizeOf[T](), offset, stride)
		return false
	}
	return true
}

// Data returns the address of the first record.
func (s Strided[T]) Data() *byte { return (*byte)(s.base) }

// IsNull reports whether there is no backing address.
func (s Strided[T]) IsNull() bool { return s.base == nil }

// SizeBytes returns the size of the record buffer.
func (s Strided[T]) SizeBytes() int { return int(s.sizeBytes) }

// Offset returns the field offset inside a record.
func (s Strided[T]) Offset() uintptr { return s.offset }

// Stride returns the record size.
func (s Strided[T]) Stride() uintptr { return s.stride }

// Len returns SizeBytes()/Stride().
func (s Strided[T]) Len() int {
	if s.stride == 0 {
		return 0
	}
	return int(s.sizeBytes / s.stride)
}

// Empty reports whether no whole record is addressable.
func (s Strided[T]) Empty() bool { return s.Len() == 0 }

// At returns a pointer to the field of record i, always validated.
func (s Strided[T]) At(i int) *T {
	if !s.check("At", i) {
		return nil
	}
	return (*T)(s.RawPtr(i))
}

// Index returns a pointer to the field of record i, validated only when
// CheckedAccess is true.
func (s Strided[T]) Index(i int) *T {
	if CheckedAccess && !s.check("Index", i) {
		return nil
	}
	return (*T)(s.RawPtr(i))
}

// Front returns the field of the first record, always validated.
func (s Strided[T]) Front() *T {
	if !s.checkNotEmpty("Front") {
		return nil
	}
	return (*T)(s.RawPtr(0))
}

// Back returns the field of the last record, always validated.
func (s Strided[T]) Back() *T {
	if !s.checkNotEmpty("Back") {
		return nil
	}
	return (*T)(s.RawPtr(s.Len() - 1))
}

// RawPtr returns the address of the field of record i. It is never
// validated.
func (s Strided[T]) RawPtr(i int) unsafe.Pointer {
	return unsafe.Add(s.base, uintptr(i)*s.stride+s.offset)
}

// All yields each record index with a pointer to its field.
func (s Strided[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		n := s.Len()
		for i := 0; i < n; i++ {
			if !yield(i, (*T)(s.RawPtr(i))) {
				return
			}
		}
	}
}

// Swap exchanges the contents of s and o.
func (s *Strided[T]) Swap(o *Strided[T]) { *s, *o = *o, *s }

func (s Strided[T]) check(op string, i int) bool {
	if s.base == nil {
		policy.Fail(types.ErrKindNullAccess, "%s: strided view pointer is null", op)
		return false
	}
	if n := s.Len(); i < 0 || i >= n {
		policy.Fail(types.ErrKindOutOfBounds, "%s: index %d is out of bounds for size %d", op, i, n)
		return false
	}
	return true
}

func (s Strided[T]) checkNotEmpty(op string) bool {
	if s.base == nil || s.Len() == 0 {
		policy.Fail(types.ErrKindNullAccess, "%s: strided view pointer is null or size is zero", op)
		return false
	}
	return true
}
