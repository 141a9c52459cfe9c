package view

import (
	"reflect"
	"unsafe"

	"github.com/joshuapare/arrayview/internal/buf"
	"github.com/joshuapare/arrayview/pkg/types"
	"github.com/joshuapare/arrayview/view/policy"
)

// FromArray returns a view over the array *p, capturing its address and its
// compile-time length. A must be [N]T:
//
//	var samples [6]int32
//	v := view.FromArray[int32](&samples)
func FromArray[T any, A any](p *A) View[T] {
	at := reflect.TypeFor[A]()
	if at.Kind() != reflect.Array || at.Elem() != reflect.TypeFor[T]() {
		policy.Fail(types.ErrKindMalformedSlice, "FromArray: %s is not an array of %s", at, reflect.TypeFor[T]())
		return View[T]{}
	}
	if p == nil {
		return View[T]{}
	}
	return View[T]{ptr: (*T)(unsafe.Pointer(p)), n: at.Len()}
}

// Bytes returns the memory of v as a byte view of v.SizeBytes() bytes.
func Bytes[T any](v View[T]) View[byte] {
	if v.ptr == nil {
		return View[byte]{}
	}
	n, ok := buf.MulOverflowSafe(v.n, int(sizeOf[T]()))
	if !ok {
		policy.Fail(types.ErrKindMalformedSlice, "Bytes: %d elements overflow the address space", v.n)
		return View[byte]{}
	}
	return View[byte]{ptr: (*byte)(unsafe.Pointer(v.ptr)), n: n}
}

// Cast reinterprets a byte view as a view of T. The base address must be
// aligned for T and the length must be a whole number of elements. T must
// not contain Go pointers.
func Cast[T any](b View[byte]) View[T] {
	if b.ptr == nil {
		return View[T]{}
	}
	size := int(sizeOf[T]())
	if size == 0 {
		policy.Fail(types.ErrKindMalformedSlice, "Cast: zero-sized element type")
		return View[T]{}
	}
	if align := alignOf[T](); uintptr(unsafe.Pointer(b.ptr))%align != 0 {
		policy.Fail(types.ErrKindMalformedSlice, "Cast: base %p is not aligned to %d", b.ptr, align)
		return View[T]{}
	}
	if b.n%size != 0 {
		policy.Fail(types.ErrKindMalformedSlice, "Cast: %d bytes is not a multiple of element size %d", b.n, size)
		return View[T]{}
	}
	return View[T]{ptr: (*T)(unsafe.Pointer(b.ptr)), n: b.n / size}
}
