package quickmath

import "aabb.theprimeagen.com/pkg/assert"

// Overlaps reports whether the closed regions of a and b share at least one
// point. Boxes that only touch along an edge or a corner overlap.
func Overlaps(a, b Rect) bool {
	if assert.Debug {
		checkExtents(a, b)
	}

	return !(a.Right() < b.Left() ||
		a.Left() > b.Right() ||
		a.Bottom() < b.Top() ||
		a.Top() > b.Bottom())
}

func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

func checkExtents(a, b Rect) {
	if a.Width >= 0 && a.Height >= 0 && b.Width >= 0 && b.Height >= 0 {
		return
	}

	assert.AddAssertData("overlaps.a", a)
	assert.AddAssertData("overlaps.b", b)
	defer func() {
		assert.RemoveAssertData("overlaps.a")
		assert.RemoveAssertData("overlaps.b")
	}()
	assert.Never("negative extent")
}
