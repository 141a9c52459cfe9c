package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for name, size := range map[string]int{
		"i8": 1, "u8": 1, "i16": 2, "u16": 2, "i32": 4,
		"u32": 4, "i64": 8, "u64": 8, "f32": 4, "f64": 8,
		"str:12": 12,
	} {
		c, err := parseType(name)
		require.NoError(t, err, name)
		require.Equal(t, size, c.size, name)
		require.Equal(t, name, c.name)
	}

	for _, bad := range []string{"", "int", "str:", "str:0", "str:-3", "str:x"} {
		_, err := parseType(bad)
		require.Error(t, err, bad)
	}
}

func TestSelectElements(t *testing.T) {
	values := []any{"a", "b", "c"}
	require.Equal(t, []element{{0, "a"}, {1, "b"}, {2, "c"}}, selectElements(values, -1))
	require.Equal(t, []element{{2, "c"}}, selectElements(values, 2))
}
