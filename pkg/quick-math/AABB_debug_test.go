//go:build debug

package quickmath_test

import (
	"bytes"
	"testing"

	"aabb.theprimeagen.com/pkg/assert"
	quickmath "aabb.theprimeagen.com/pkg/quick-math"
	"github.com/stretchr/testify/require"
)

func TestOverlapsAssertsNegativeExtent(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.ToWriter(buf)
	restore := assert.SetExit(func(code int) {
		panic(code)
	})
	t.Cleanup(func() {
		restore()
		assert.ToWriter(nil)
	})

	require.NotPanics(t, func() {
		quickmath.Overlaps(quickmath.NewRect(0, 0, 16, 16), quickmath.NewRect(16, 0, 0, 0))
	})
	require.Empty(t, buf.String())

	require.PanicsWithValue(t, 1, func() {
		quickmath.Overlaps(quickmath.NewRect(10, 0, -4, 5), quickmath.NewRect(0, 0, 20, 5))
	})
	out := buf.String()
	require.Contains(t, out, "   msg=negative extent\n")
	require.Contains(t, out, "   overlaps.a=Rect(x=10 y=0 w=-4 h=5)\n")
	require.Contains(t, out, "   overlaps.b=Rect(x=0 y=0 w=20 h=5)\n")

	buf.Reset()
	require.PanicsWithValue(t, 1, func() {
		quickmath.NewRect(0, 0, 1, 1).Overlaps(quickmath.NewRect(0, 0, 1, -1))
	})
	require.Contains(t, buf.String(), "   overlaps.b=Rect(x=0 y=0 w=1 h=-1)\n")
}
