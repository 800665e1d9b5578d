// Package island defines the generated terrain graph: regions, edges and
// corners with their drainage, moisture and biome attributes, plus the query
// and serialization surface consumers read the island through.
package island

import (
	"sync"

	"github.com/glidecamp/islandgen/internal/biome"
	"github.com/glidecamp/islandgen/internal/geom"
)

// None marks an absent graph reference: the open side of an outer boundary
// edge, or a corner without a downslope neighbor.
const None = -1

// Corner is a shared vertex of the tessellation. Corners carry the drainage
// state: elevation, the downslope pointer and the accumulated water flow.
type Corner struct {
	ID        int
	Position  geom.Vec2
	Elevation float64
	// Regions holds the adjacent region ids in ascending order.
	Regions []int
	// Downslope is the id of the lowest strictly lower adjacent corner, or
	// None for corners with no lower neighbor.
	Downslope int
	// Water is the accumulated drainage flow through this corner.
	Water  float64
	IsLake bool
}

// Edge separates two adjacent regions and connects two corners. The second
// region id is None on the outer boundary.
type Edge struct {
	ID          int
	Regions     [2]int
	Corners     [2]int
	IsCoastline bool
	IsRiver     bool
	RiverFlow   float64
}

// Region is a tessellation cell.
type Region struct {
	ID       int
	Centroid geom.Vec2
	// Polygon is the closed boundary ring: the last vertex repeats the
	// first. Degenerate cells keep an empty polygon.
	Polygon   []geom.Vec2
	Elevation float64
	IsOcean   bool
	IsLake    bool
	Moisture  float64
	Biome     biome.Tag
	// Neighbors holds the adjacent region ids in ascending order.
	Neighbors []int
}

// Graph owns the generated island. Ids are stable array indices into the
// entity slices. Once built, the graph is read-mostly: callers must not
// mutate entities or the slices they share. Pass the graph by pointer, the
// lazily built spatial index makes it unsafe to copy.
type Graph struct {
	Regions []Region
	Edges   []Edge
	Corners []Corner
	Bounds  geom.Rect

	indexOnce sync.Once
	index     *spatialIndex
}

// Land reports whether the region is neither ocean nor lake.
func (r Region) Land() bool {
	return !r.IsOcean && !r.IsLake
}

// HasGeometry reports whether the region carries a usable polygon.
// Degenerate tessellation cells become zero-geometry placeholders that stay
// out of land statistics.
func (r Region) HasGeometry() bool {
	return len(r.Polygon) >= 3
}
