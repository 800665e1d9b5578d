package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glidecamp/islandgen/internal/geom"
)

// crossPoints is a unit square with a center site: four triangles, the
// center cell closed, the corner cells open on the hull.
func crossPoints() []geom.Vec2 {
	return []geom.Vec2{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
		{X: 1, Y: 1},
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		points []geom.Vec2
	}{
		{"empty", nil},
		{"two points", []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{"collinear", []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.points)
			assert.Error(t, err)
		})
	}
}

func TestCellPolygonCenterSite(t *testing.T) {
	tr, err := Build(crossPoints())
	require.NoError(t, err)

	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, 4, tr.TriangleCount())

	ring, closed := tr.CellPolygon(4)
	require.True(t, closed, "interior site must have a closed cell")
	require.Len(t, ring, 4)

	// All four circumcenters are equidistant from the center site and from
	// the square corners (shared circumcircles).
	center := tr.Point(4)
	for _, v := range ring {
		assert.InDelta(t, 1.0, v.Dist(center), 1e-9)
	}

	c := geom.PolygonCentroid(ring)
	assert.InDelta(t, 1.0, c.X, 1e-9)
	assert.InDelta(t, 1.0, c.Y, 1e-9)
}

func TestCellPolygonHullSite(t *testing.T) {
	tr, err := Build(crossPoints())
	require.NoError(t, err)

	for p := 0; p < 4; p++ {
		_, closed := tr.CellPolygon(p)
		assert.False(t, closed, "hull site %d must report an open cell", p)
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	tr, err := Build(crossPoints())
	require.NoError(t, err)

	adj := make([]map[int]bool, tr.Len())
	for p := 0; p < tr.Len(); p++ {
		adj[p] = map[int]bool{}
		for _, n := range tr.Neighbors(p) {
			assert.NotEqual(t, p, n, "site cannot neighbor itself")
			adj[p][n] = true
		}
	}

	for p := 0; p < tr.Len(); p++ {
		for n := range adj[p] {
			assert.True(t, adj[n][p], "adjacency must be symmetric: %d-%d", p, n)
		}
	}

	// The center site touches every corner.
	assert.Len(t, adj[4], 4)
}

func TestCircumcenter(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c geom.Vec2
		want    geom.Vec2
	}{
		{
			name: "right triangle",
			a:    geom.Vec2{X: 0, Y: 0}, b: geom.Vec2{X: 2, Y: 0}, c: geom.Vec2{X: 0, Y: 2},
			want: geom.Vec2{X: 1, Y: 1},
		},
		{
			name: "equilateral-ish",
			a:    geom.Vec2{X: -1, Y: 0}, b: geom.Vec2{X: 1, Y: 0}, c: geom.Vec2{X: 0, Y: 1},
			want: geom.Vec2{X: 0, Y: 0},
		},
		{
			name: "degenerate collinear falls back to centroid",
			a:    geom.Vec2{X: 0, Y: 0}, b: geom.Vec2{X: 1, Y: 0}, c: geom.Vec2{X: 2, Y: 0},
			want: geom.Vec2{X: 1, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := circumcenter(tt.a, tt.b, tt.c)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestDeterminism(t *testing.T) {
	a, err := Build(crossPoints())
	require.NoError(t, err)
	b, err := Build(crossPoints())
	require.NoError(t, err)

	require.Equal(t, a.TriangleCount(), b.TriangleCount())
	for i := 0; i < a.TriangleCount(); i++ {
		assert.Equal(t, a.Circumcenter(i), b.Circumcenter(i))
	}
	for p := 0; p < a.Len(); p++ {
		assert.Equal(t, a.Neighbors(p), b.Neighbors(p))
	}
}
