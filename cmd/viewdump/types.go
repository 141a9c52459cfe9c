package main

import (
	"bytes"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/arrayview/view"
)

// codec turns raw bytes into printable values of one element type.
type codec struct {
	name string
	size int
	// elements decodes b as consecutive elements.
	elements func(b view.View[byte]) []any
	// fields decodes the element at offset of every stride-sized record.
	fields func(b view.View[byte], offset, stride uintptr) []any
}

func numeric[T any](name string) codec {
	var zero T
	return codec{
		name: name,
		size: int(unsafe.Sizeof(zero)),
		elements: func(b view.View[byte]) []any {
			return collect(view.Cast[T](b).Values())
		},
		fields: func(b view.View[byte], offset, stride uintptr) []any {
			s := view.NewStridedBytes[T](b, offset, stride)
			out := make([]any, 0, s.Len())
			for _, p := range s.All() {
				out = append(out, *p)
			}
			return out
		},
	}
}

// text decodes fixed-width, NUL-padded Windows-1252 strings.
func text(width int) codec {
	decode := func(raw []byte) any {
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			raw = raw[:i]
		}
		s, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return fmt.Sprintf("<invalid: %v>", err)
		}
		return string(s)
	}
	project := func(b view.View[byte], offset, stride uintptr) []any {
		s := view.NewStridedBytes[byte](b, offset, stride)
		out := make([]any, 0, s.Len())
		for i := 0; i < s.Len(); i++ {
			out = append(out, decode(unsafe.Slice((*byte)(s.RawPtr(i)), width)))
		}
		return out
	}
	return codec{
		name: "str:" + strconv.Itoa(width),
		size: width,
		elements: func(b view.View[byte]) []any {
			return project(b, 0, uintptr(width))
		},
		fields: project,
	}
}

var numericCodecs = map[string]codec{
	"i8":  numeric[int8]("i8"),
	"u8":  numeric[uint8]("u8"),
	"i16": numeric[int16]("i16"),
	"u16": numeric[uint16]("u16"),
	"i32": numeric[int32]("i32"),
	"u32": numeric[uint32]("u32"),
	"i64": numeric[int64]("i64"),
	"u64": numeric[uint64]("u64"),
	"f32": numeric[float32]("f32"),
	"f64": numeric[float64]("f64"),
}

// parseType resolves a --type flag value.
func parseType(s string) (codec, error) {
	if c, ok := numericCodecs[s]; ok {
		return c, nil
	}
	if w, ok := strings.CutPrefix(s, "str:"); ok {
		n, err := strconv.Atoi(w)
		if err != nil || n <= 0 {
			return codec{}, fmt.Errorf("invalid string width %q", w)
		}
		return text(n), nil
	}
	return codec{}, fmt.Errorf("unknown type %q (want i8|u8|i16|u16|i32|u32|i64|u64|f32|f64|str:N)", s)
}

func collect[T any](seq iter.Seq[T]) []any {
	var out []any
	for v := range seq {
		out = append(out, v)
	}
	return out
}
