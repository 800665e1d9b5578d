// Package points produces the sample sites the island tessellation is built
// on: rejection-sampled interior points relaxed toward uniform spacing, plus
// an evenly spaced ring of boundary points that always becomes ocean.
package points

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/glidecamp/islandgen/internal/geom"
	"github.com/glidecamp/islandgen/internal/mesh"
)

// FrameScale positions the transient ghost ring used to close the outermost
// Voronoi cells, as a multiple of the disk radius.
const FrameScale = 1.2

// Options configures one point set.
type Options struct {
	Count           int
	Radius          float64
	Center          geom.Vec2
	LloydIterations int
}

// Set is the generated site collection. Interior sites come first in the
// tessellation order, boundary ring sites after them.
type Set struct {
	Interior []geom.Vec2
	Boundary []geom.Vec2
}

// BoundaryCount returns the boundary ring size for an interior count,
// keeping the ring spacing comparable to the relaxed interior spacing.
func BoundaryCount(count int) int {
	n := int(math.Ceil(2 * math.Sqrt(math.Pi*float64(count))))
	if n < 16 {
		n = 16
	}
	return n
}

// Ring returns n points evenly spaced on the circle around center. The
// phase offset is half a step so ring points never align radially with a
// second ring of the same size.
func Ring(center geom.Vec2, radius float64, n int) []geom.Vec2 {
	out := make([]geom.Vec2, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * (float64(i) + 0.5) / float64(n)
		out[i] = geom.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return out
}

// Generate builds the full site set for a seed. Identical seed and options
// produce a bit-identical result.
func Generate(seed int64, opts Options) (*Set, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("point count must not be negative, got %d", opts.Count)
	}
	if opts.Radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %f", opts.Radius)
	}

	rng := rand.New(rand.NewSource(seed))
	interior := sampleDisk(rng, opts.Center, opts.Radius, opts.Count)

	for i := 0; i < opts.LloydIterations; i++ {
		relaxed, ok := relax(interior, opts.Center, opts.Radius)
		if !ok {
			break
		}
		interior = relaxed
	}

	return &Set{
		Interior: interior,
		Boundary: Ring(opts.Center, opts.Radius, BoundaryCount(opts.Count)),
	}, nil
}

// sampleDisk draws count points uniformly inside the disk by rejection.
func sampleDisk(rng *rand.Rand, center geom.Vec2, radius float64, count int) []geom.Vec2 {
	out := make([]geom.Vec2, 0, count)
	for len(out) < count {
		x := (rng.Float64()*2 - 1) * radius
		y := (rng.Float64()*2 - 1) * radius
		if x*x+y*y <= radius*radius {
			out = append(out, geom.Vec2{X: center.X + x, Y: center.Y + y})
		}
	}
	return out
}

// relax performs one Lloyd iteration: every interior site moves to the
// centroid of its Voronoi cell. A ghost frame at FrameScale*radius bounds
// the diagram so the outermost real cells stay finite. Sites with open or
// degenerate cells keep their position; centroids escaping the disk are
// projected radially back onto it. Returns ok=false when the point set
// cannot be triangulated at all.
func relax(interior []geom.Vec2, center geom.Vec2, radius float64) ([]geom.Vec2, bool) {
	frame := Ring(center, radius*FrameScale, BoundaryCount(len(interior)))
	sites := make([]geom.Vec2, 0, len(interior)+len(frame))
	sites = append(sites, interior...)
	sites = append(sites, frame...)

	tri, err := mesh.Build(sites)
	if err != nil {
		return interior, false
	}

	out := make([]geom.Vec2, len(interior))
	for i := range interior {
		ring, closed := tri.CellPolygon(i)
		if !closed || len(ring) < 3 {
			out[i] = interior[i]
			continue
		}
		c := geom.PolygonCentroid(ring)
		if d := c.Dist(center); d > radius {
			c = center.Add(c.Sub(center).Mul(radius / d))
		}
		out[i] = c
	}
	return out, true
}
