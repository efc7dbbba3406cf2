package field

// Vec2 is a position in world space. X runs along the grid columns and Y along
// the grid rows; for a ground plane Y is the world's depth (z) axis.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul scales both components by s.
func (v Vec2) Mul(s float32) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// DistanceSquared returns the squared euclidean distance between v and o.
func (v Vec2) DistanceSquared(o Vec2) float32 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	Min, Max Vec2
}

// Contains reports whether p lies inside r. Points on the edges are inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the extent along X.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the extent along Y.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}
