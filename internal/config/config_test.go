package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("ARRAYVIEW_ERROR_POLICY", "")
	t.Setenv("ARRAYVIEW_DIAG_FORMAT", "")
	t.Setenv("ARRAYVIEW_DIAG_LEVEL", "")

	c, err := Parse()
	require.NoError(t, err)
	require.Empty(t, c.ErrorPolicy)
	require.Equal(t, slog.LevelInfo, c.DiagLevel)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("ARRAYVIEW_ERROR_POLICY", "raise")
	t.Setenv("ARRAYVIEW_DIAG_FORMAT", "json")
	t.Setenv("ARRAYVIEW_DIAG_LEVEL", "DEBUG")

	c, err := Parse()
	require.NoError(t, err)
	require.Equal(t, PolicyRaise, c.ErrorPolicy)
	require.Equal(t, "json", c.DiagFormat)
	require.Equal(t, slog.LevelDebug, c.DiagLevel)
}

func TestParseRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("ARRAYVIEW_ERROR_POLICY", "ignore")

	_, err := Parse()
	require.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestParseRejectsBadLevel(t *testing.T) {
	t.Setenv("ARRAYVIEW_ERROR_POLICY", "")
	t.Setenv("ARRAYVIEW_DIAG_LEVEL", "LOUD")

	_, err := Parse()
	require.Error(t, err)
}

func TestParsePolicyIgnoresCase(t *testing.T) {
	for in, want := range map[string]string{"Abort": PolicyAbort, "RAISE": PolicyRaise, "rAiSe": PolicyRaise} {
		t.Setenv("ARRAYVIEW_ERROR_POLICY", in)
		t.Setenv("ARRAYVIEW_DIAG_LEVEL", "")

		c, err := Parse()
		require.NoError(t, err, in)
		require.Equal(t, want, c.ErrorPolicy, in)
	}
}
