// Package mesh wraps a Delaunay triangulation with the dual-graph helpers
// the generator needs: triangle circumcenters, Voronoi cell rings and site
// adjacency. Sites are addressed by their index in the input slice.
package mesh

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"

	"github.com/glidecamp/islandgen/internal/geom"
)

// Triangulation is an immutable Delaunay triangulation over a point set,
// with per-triangle circumcenters precomputed for Voronoi extraction.
type Triangulation struct {
	points   []geom.Vec2
	tri      *delaunay.Triangulation
	centers  []geom.Vec2
	incoming []int
}

// Build triangulates the given sites. It fails when the input has fewer
// than three points or is fully collinear.
func Build(points []geom.Vec2) (*Triangulation, error) {
	sites := make([]delaunay.Point, len(points))
	for i, p := range points {
		sites[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	tri, err := delaunay.Triangulate(sites)
	if err != nil {
		return nil, fmt.Errorf("failed to triangulate %d sites: %w", len(points), err)
	}

	t := &Triangulation{
		points:   points,
		tri:      tri,
		centers:  make([]geom.Vec2, len(tri.Triangles)/3),
		incoming: make([]int, len(points)),
	}
	for i := range t.centers {
		t.centers[i] = circumcenter(
			points[tri.Triangles[3*i]],
			points[tri.Triangles[3*i+1]],
			points[tri.Triangles[3*i+2]],
		)
	}

	// One incoming halfedge per site. For hull sites prefer the edge with no
	// twin so the cell walk starts at the fan boundary and covers every
	// incident triangle.
	for i := range t.incoming {
		t.incoming[i] = -1
	}
	for e := range tri.Triangles {
		endpoint := tri.Triangles[nextHalfedge(e)]
		if t.incoming[endpoint] == -1 || tri.Halfedges[e] == -1 {
			t.incoming[endpoint] = e
		}
	}

	return t, nil
}

// Len returns the number of sites.
func (t *Triangulation) Len() int { return len(t.points) }

// Point returns the site position for index i.
func (t *Triangulation) Point(i int) geom.Vec2 { return t.points[i] }

// TriangleCount returns the number of triangles.
func (t *Triangulation) TriangleCount() int { return len(t.centers) }

// Circumcenter returns the circumcenter of triangle i.
func (t *Triangulation) Circumcenter(i int) geom.Vec2 { return t.centers[i] }

// CellPolygon returns the Voronoi cell of site p as the ordered ring of
// circumcenters of its incident triangles. The second result is false when
// the cell is open (p lies on the convex hull) or p has no incident
// triangle; such cells have no finite polygon.
func (t *Triangulation) CellPolygon(p int) ([]geom.Vec2, bool) {
	start := t.incoming[p]
	if start < 0 {
		return nil, false
	}

	var ring []geom.Vec2
	closed := true
	in := start
	for steps := 0; ; steps++ {
		if steps > len(t.tri.Triangles) {
			return ring, false
		}
		ring = append(ring, t.centers[in/3])
		out := nextHalfedge(in)
		in = t.tri.Halfedges[out]
		if in == -1 {
			closed = false
			break
		}
		if in == start {
			break
		}
	}
	return ring, closed
}

// Neighbors returns the sites sharing a Delaunay edge with p, in cell walk
// order.
func (t *Triangulation) Neighbors(p int) []int {
	start := t.incoming[p]
	if start < 0 {
		return nil
	}

	var out []int
	in := start
	for steps := 0; ; steps++ {
		if steps > len(t.tri.Triangles) {
			return out
		}
		out = append(out, t.tri.Triangles[in])
		og := nextHalfedge(in)
		in = t.tri.Halfedges[og]
		if in == -1 {
			// The final outgoing edge has no twin; its endpoint is still a
			// neighbor of p.
			out = append(out, t.tri.Triangles[nextHalfedge(og)])
			break
		}
		if in == start {
			break
		}
	}
	return out
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

const circumcenterEpsilon = 1e-12

// circumcenter computes the circumcenter of triangle abc, falling back to
// the centroid when the triangle is degenerate.
func circumcenter(a, b, c geom.Vec2) geom.Vec2 {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < circumcenterEpsilon {
		return geom.Vec2{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return geom.Vec2{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
}
