package quickmath

import "fmt"

// Rect is an axis aligned box anchored at (X, Y) and extending Width to the
// right and Height along the second axis. Whether increasing Y points up or
// down is up to the caller.
//
// Negative extents are accepted and produce an inverted box.
//
// Right and Bottom are plain int sums. Boxes whose far edge would pass
// math.MaxInt (or math.MinInt) wrap around and compare wrong; keep
// coordinates and extents well inside the int range.
type Rect struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// ZeroRect is the declare-then-assign value. Same as Rect{}.
var ZeroRect = Rect{}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Left() int {
	return r.X
}

func (r Rect) Right() int {
	return r.X + r.Width
}

func (r Rect) Top() int {
	return r.Y
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

func (r Rect) Translate(d Vec2) Rect {
	p := NewVec2(r.X, r.Y).Add(d)
	r.X, r.Y = p.X, p.Y
	return r
}

func (r Rect) IsDegenerate() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(x=%d y=%d w=%d h=%d)", r.X, r.Y, r.Width, r.Height)
}

// Dump lets a Rect ride along in assert output.
func (r Rect) Dump() string {
	return r.String()
}
