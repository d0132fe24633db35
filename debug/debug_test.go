package debug_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/debug"
)

func withCapture(t *testing.T, enabled bool) *bytes.Buffer {
	t.Helper()
	prevEnabled, prevWriter := debug.Enabled, debug.Writer
	t.Cleanup(func() {
		debug.Enabled, debug.Writer = prevEnabled, prevWriter
	})
	var buf bytes.Buffer
	debug.Enabled = enabled
	debug.Writer = &buf
	return &buf
}

func TestDumpSkippedWhenDisabled(t *testing.T) {
	buf := withCapture(t, false)
	debug.Dump("label", 1, 2)
	require.Empty(t, buf.String())
}

func TestDumpWritesLabelWhenEnabled(t *testing.T) {
	buf := withCapture(t, true)
	debug.Dump("scope", "x")
	require.Contains(t, buf.String(), "--- scope ---")
}

func TestTracefSkippedWhenDisabled(t *testing.T) {
	buf := withCapture(t, false)
	debug.Tracef("evaluating %s", "rule")
	require.Empty(t, buf.String())
}

func TestTracefWritesFormattedLineWhenEnabled(t *testing.T) {
	buf := withCapture(t, true)
	debug.Tracef("evaluating %s", "rule")
	require.Equal(t, "evaluating rule\n", buf.String())
}
