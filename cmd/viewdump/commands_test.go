package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arrayview/internal/config"
	"github.com/joshuapare/arrayview/internal/diag"
	"github.com/joshuapare/arrayview/pkg/types"
)

func TestSliceCommand(t *testing.T) {
	littleEndianHost(t)
	path := writeFile(t, []byte{
		0, 0, 0, 0, 10, 0, 0, 0, 20, 0, 0, 0,
		30, 0, 0, 0, 40, 0, 0, 0, 50, 0, 0, 0,
	})

	tests := []struct {
		name    string
		typ     string
		start   int
		count   int
		index   int
		want    string
		wantErr error
	}{
		{name: "all i32", typ: "i32", index: -1, want: "0\t0\n1\t10\n2\t20\n3\t30\n4\t40\n5\t50\n"},
		{name: "window", typ: "i32", start: 8, count: 3, index: -1, want: "0\t20\n1\t30\n2\t40\n"},
		{name: "single", typ: "u32", index: 5, want: "5\t50\n"},
		{name: "bytes", typ: "u8", start: 20, index: -1, want: "0\t50\n1\t0\n2\t0\n3\t0\n"},
		{name: "index past end", typ: "i32", index: 6, wantErr: types.ErrOutOfBounds},
		{name: "misaligned start", typ: "i32", start: 2, count: 1, index: -1, wantErr: types.ErrMalformedSlice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			sliceType, sliceStart, sliceCount, sliceIndex = tt.typ, tt.start, tt.count, tt.index

			out, err := captureOutput(t, func() error { return runSlice(path) })
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSliceCommandRangeErrors(t *testing.T) {
	resetFlags(t)
	path := writeFile(t, make([]byte, 8))

	sliceType, sliceStart, sliceCount = "u32", 4, 2
	_, err := captureOutput(t, func() error { return runSlice(path) })
	require.ErrorContains(t, err, "bounds")

	sliceType = "c128"
	_, err = captureOutput(t, func() error { return runSlice(path) })
	require.ErrorContains(t, err, "unknown type")
}

func TestStridedCommand(t *testing.T) {
	littleEndianHost(t)
	path := recordsFile(t, "alpha", "beta", "gamma")

	resetFlags(t)
	stridedType, stridedOffset, stridedStride = "u32", 0, 16
	out, err := captureOutput(t, func() error { return runStrided(path) })
	require.NoError(t, err)
	assert.Equal(t, "0\t100\n1\t101\n2\t102\n", out)

	stridedType, stridedOffset = "f32", 4
	out, err = captureOutput(t, func() error { return runStrided(path) })
	require.NoError(t, err)
	assert.Equal(t, "0\t2\n1\t2\n2\t2\n", out)

	stridedType, stridedOffset, stridedIndex = "str:8", 8, 1
	out, err = captureOutput(t, func() error { return runStrided(path) })
	require.NoError(t, err)
	assert.Equal(t, "1\tbeta\n", out)
}

func TestStridedCommandJSON(t *testing.T) {
	path := recordsFile(t, "caf\xe9", "na\xefve")

	resetFlags(t)
	jsonOut = true
	stridedType, stridedOffset, stridedStride = "str:8", 8, 16
	out, err := captureOutput(t, func() error { return runStrided(path) })
	require.NoError(t, err)

	var got []element
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "café", got[0].Value)
	assert.Equal(t, "naïve", got[1].Value)
}

func TestStridedCommandLayoutErrors(t *testing.T) {
	path := recordsFile(t, "x")

	resetFlags(t)
	stridedType, stridedOffset, stridedStride = "u64", 12, 16
	_, err := captureOutput(t, func() error { return runStrided(path) })
	require.ErrorContains(t, err, "does not fit")

	stridedStride = 0
	_, err = captureOutput(t, func() error { return runStrided(path) })
	require.ErrorContains(t, err, "stride must be positive")

	stridedType, stridedOffset, stridedStride, stridedIndex = "u8", 0, 16, 4
	_, err = captureOutput(t, func() error { return runStrided(path) })
	require.ErrorIs(t, err, types.ErrOutOfBounds)
}

func TestQuietSuppressesOutput(t *testing.T) {
	path := writeFile(t, []byte{1, 2, 3})
	resetFlags(t)
	quiet = true
	out, err := captureOutput(t, func() error { return runSlice(path) })
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDiagnosticsKeepConfiguredFormat(t *testing.T) {
	t.Setenv("ARRAYVIEW_ERROR_POLICY", "")
	t.Setenv("ARRAYVIEW_DIAG_FORMAT", "json")
	t.Setenv("ARRAYVIEW_DIAG_LEVEL", "")
	cfg, err := config.Parse()
	require.NoError(t, err)

	opts := diagOptions(cfg, false)
	require.Equal(t, "json", opts.Format)
	require.Equal(t, slog.LevelWarn, opts.Level)
	require.Equal(t, slog.LevelDebug, diagOptions(cfg, true).Level)

	var out bytes.Buffer
	opts.Writer = &out
	require.NoError(t, diag.Init(opts))
	t.Cleanup(diag.Discard)

	diag.Info("hidden")
	diag.Warn("ignoring trailing partial record", "bytes", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, "ignoring trailing partial record", rec["msg"])
	require.EqualValues(t, 3, rec["bytes"])
}
