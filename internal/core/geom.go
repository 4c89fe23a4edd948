package core

// Vec2 is a 2-D vector used for positions and velocities, in pixels and
// pixels per second respectively.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Advance integrates a position by one timestep: p + v*dt. It is the single
// kinematics primitive shared by paddles and the ball; bounds handling
// (clamping for paddles, reflection for the ball) is the caller's job.
func Advance(p, v Vec2, dt float64) Vec2 {
	return p.Add(v.Scale(dt))
}

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterY returns the y coordinate of the rectangle's center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether two rectangles overlap (AABB test).
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
