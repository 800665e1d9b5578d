// Package geom holds the small 2D primitives shared by the generation
// pipeline: vectors, axis-aligned rectangles and polygon helpers.
package geom

import "math"

// Vec2 is a point or direction in the generation plane.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	Min Vec2 `json:"min"`
	Max Vec2 `json:"max"`
}

// RectAround returns the degenerate rectangle containing only p, a useful
// seed for Expand.
func RectAround(p Vec2) Rect { return Rect{Min: p, Max: p} }

// Expand grows the rectangle to include p.
func (r Rect) Expand(p Vec2) Rect {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return r.Expand(o.Min).Expand(o.Max)
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X && r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Smoothstep is the cubic hermite interpolation between edge0 and edge1,
// clamped outside the interval.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

const centroidAreaEpsilon = 1e-12

// PolygonCentroid returns the area-weighted centroid of a polygon ring. The
// ring may be open or closed (last vertex repeating the first); vertices are
// treated cyclically either way. Near-zero-area rings fall back to the plain
// vertex average instead of dividing by the vanishing area.
func PolygonCentroid(ring []Vec2) Vec2 {
	n := len(ring)
	if n == 0 {
		return Vec2{}
	}
	if ring[0] == ring[n-1] && n > 1 {
		ring = ring[:n-1]
		n--
	}
	if n < 3 {
		return vertexAverage(ring)
	}
	var area, cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
		area += cross
		cx += (ring[i].X + ring[j].X) * cross
		cy += (ring[i].Y + ring[j].Y) * cross
	}
	area /= 2
	if math.Abs(area) < centroidAreaEpsilon {
		return vertexAverage(ring)
	}
	return Vec2{X: cx / (6 * area), Y: cy / (6 * area)}
}

func vertexAverage(ring []Vec2) Vec2 {
	var sum Vec2
	for _, p := range ring {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(ring)))
}

// PolygonBounds returns the bounding rectangle of a ring. Empty rings yield
// the zero rectangle.
func PolygonBounds(ring []Vec2) Rect {
	if len(ring) == 0 {
		return Rect{}
	}
	r := RectAround(ring[0])
	for _, p := range ring[1:] {
		r = r.Expand(p)
	}
	return r
}

// PointInPolygon reports whether p lies inside the polygon ring using the
// even-odd ray cast. The ring may be open or closed.
func PointInPolygon(p Vec2, ring []Vec2) bool {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
		n--
	}
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
