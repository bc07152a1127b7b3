package assert

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type exitCode int

type box string

func (b box) Dump() string {
	return string(b)
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	ToWriter(buf)
	restore := SetExit(func(code int) {
		panic(exitCode(code))
	})
	t.Cleanup(func() {
		ToWriter(nil)
		restore()
	})
	return buf
}

func TestAssertPasses(t *testing.T) {
	buf := capture(t)
	require.NotPanics(t, func() {
		Assert(true, "fine")
		NoError(nil, "fine")
		NotNil(1, "fine")
	})
	require.Empty(t, buf.String())
}

func TestAssertFailureReport(t *testing.T) {
	buf := capture(t)
	AddAssertData("player", box("Rect(x=0 y=0 w=16 h=16)"))
	defer RemoveAssertData("player")

	require.PanicsWithValue(t, exitCode(1), func() {
		Assert(false, "negative extent", "width", -3)
	})

	out := buf.String()
	require.Contains(t, out, "ASSERT\n")
	require.Contains(t, out, "   msg=negative extent\n")
	require.Contains(t, out, "   area=Assert\n")
	require.Contains(t, out, "   width=-3\n")
	require.Contains(t, out, "   player=Rect(x=0 y=0 w=16 h=16)\n")
}

func TestNoErrorFailure(t *testing.T) {
	buf := capture(t)
	require.PanicsWithValue(t, exitCode(1), func() {
		NoError(errors.New("disk on fire"), "could not open store")
	})
	require.Contains(t, buf.String(), "   error=disk on fire\n")
}

func TestNeverAndNotNil(t *testing.T) {
	capture(t)
	require.PanicsWithValue(t, exitCode(1), func() { Never("unreachable") })
	require.PanicsWithValue(t, exitCode(1), func() { NotNil(nil, "missing") })
}
