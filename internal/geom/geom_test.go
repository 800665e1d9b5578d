package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonCentroid(t *testing.T) {
	tests := []struct {
		name string
		ring []Vec2
		want Vec2
	}{
		{
			name: "unit square open",
			ring: []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			want: Vec2{0.5, 0.5},
		},
		{
			name: "unit square closed",
			ring: []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
			want: Vec2{0.5, 0.5},
		},
		{
			name: "clockwise winding",
			ring: []Vec2{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
			want: Vec2{1, 1},
		},
		{
			name: "translated triangle",
			ring: []Vec2{{10, 10}, {13, 10}, {10, 13}},
			want: Vec2{11, 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolygonCentroid(tt.ring)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestPolygonCentroidDegenerate(t *testing.T) {
	// Collinear ring has no area; the centroid must fall back to the vertex
	// average instead of dividing by zero.
	ring := []Vec2{{0, 0}, {1, 0}, {2, 0}}
	got := PolygonCentroid(ring)
	assert.InDelta(t, 1.0, got.X, 1e-9)
	assert.InDelta(t, 0.0, got.Y, 1e-9)

	assert.Equal(t, Vec2{}, PolygonCentroid(nil))
	assert.Equal(t, Vec2{3, 4}, PolygonCentroid([]Vec2{{3, 4}}))
}

func TestPointInPolygon(t *testing.T) {
	square := []Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	// Concave "L" shape: the notch at the top right is outside.
	ell := []Vec2{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}

	tests := []struct {
		name string
		ring []Vec2
		p    Vec2
		want bool
	}{
		{"square interior", square, Vec2{2, 2}, true},
		{"square outside", square, Vec2{5, 2}, false},
		{"square far outside", square, Vec2{-1, -1}, false},
		{"ell inside arm", ell, Vec2{1, 3}, true},
		{"ell inside base", ell, Vec2{3, 1}, true},
		{"ell notch", ell, Vec2{3, 3}, false},
		{"too few vertices", []Vec2{{0, 0}, {1, 1}}, Vec2{0.5, 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointInPolygon(tt.p, tt.ring))
		})
	}
}

func TestRect(t *testing.T) {
	r := RectAround(Vec2{1, 1}).Expand(Vec2{-1, 3}).Expand(Vec2{2, 0})
	assert.Equal(t, Rect{Min: Vec2{-1, 0}, Max: Vec2{2, 3}}, r)

	assert.True(t, r.Contains(Vec2{0, 1}))
	assert.False(t, r.Contains(Vec2{3, 1}))

	assert.True(t, r.Intersects(Rect{Min: Vec2{1.5, 2}, Max: Vec2{5, 5}}))
	assert.False(t, r.Intersects(Rect{Min: Vec2{3, 4}, Max: Vec2{5, 5}}))

	u := r.Union(Rect{Min: Vec2{4, -2}, Max: Vec2{5, 1}})
	assert.Equal(t, Rect{Min: Vec2{-1, -2}, Max: Vec2{5, 3}}, u)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0, 1, -0.5))
	assert.Equal(t, 0.0, Smoothstep(0, 1, 0))
	assert.Equal(t, 0.5, Smoothstep(0, 1, 0.5))
	assert.Equal(t, 1.0, Smoothstep(0, 1, 1))
	assert.Equal(t, 1.0, Smoothstep(0, 1, 2))

	// Monotonic across the interval.
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := Smoothstep(0.2, 0.8, 0.2+0.6*float64(i)/100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}
