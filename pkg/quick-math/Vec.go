package quickmath

import "fmt"

// Vec2 is an integer offset on the same grid as Rect.
type Vec2 struct {
	X, Y int
}

func NewVec2(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%d, %d)", v.X, v.Y)
}
