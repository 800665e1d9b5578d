package island

import (
	"github.com/glidecamp/islandgen/internal/geom"
)

func (g *Graph) ensureIndex() *spatialIndex {
	g.indexOnce.Do(func() {
		g.index = newSpatialIndex(g.Regions)
	})
	return g.index
}

// RegionAt returns the region whose polygon contains the point, using the
// spatial index. The boolean is false when the point lies outside every
// region.
func (g *Graph) RegionAt(x, y float64) (Region, bool) {
	id, ok := g.ensureIndex().findRegion(g.Regions, x, y)
	if !ok {
		return Region{}, false
	}
	return g.Regions[id], true
}

// RegionAtLinear is the brute-force variant of RegionAt. It scans every
// region and is intended for small graphs and for cross-checking the index.
func (g *Graph) RegionAtLinear(x, y float64) (Region, bool) {
	p := geom.Vec2{X: x, Y: y}
	for _, r := range g.Regions {
		if !r.HasGeometry() {
			continue
		}
		if geom.PointInPolygon(p, r.Polygon) {
			return r, true
		}
	}
	return Region{}, false
}

// RegionsInBounds returns all regions whose bounding box overlaps the query
// rectangle, in ascending id order. Boxes overlap more than polygons do;
// callers needing exact containment must refine the result themselves.
func (g *Graph) RegionsInBounds(bounds geom.Rect) []Region {
	ids := g.ensureIndex().queryBounds(bounds)
	regions := make([]Region, 0, len(ids))
	for _, id := range ids {
		regions = append(regions, g.Regions[id])
	}
	return regions
}

// Neighbors returns the regions adjacent to the given region id. The boolean
// is false for ids outside the graph.
func (g *Graph) Neighbors(id int) ([]Region, bool) {
	if id < 0 || id >= len(g.Regions) {
		return nil, false
	}
	neighbors := g.Regions[id].Neighbors
	regions := make([]Region, 0, len(neighbors))
	for _, n := range neighbors {
		regions = append(regions, g.Regions[n])
	}
	return regions, true
}

// LandRegions returns every region that is neither ocean nor lake.
func (g *Graph) LandRegions() []Region {
	return g.filterRegions(func(r Region) bool { return r.Land() })
}

// OceanRegions returns every ocean region.
func (g *Graph) OceanRegions() []Region {
	return g.filterRegions(func(r Region) bool { return r.IsOcean })
}

// LakeRegions returns every lake region.
func (g *Graph) LakeRegions() []Region {
	return g.filterRegions(func(r Region) bool { return r.IsLake })
}

// CoastlineEdges returns every edge separating ocean from land.
func (g *Graph) CoastlineEdges() []Edge {
	edges := make([]Edge, 0)
	for _, e := range g.Edges {
		if e.IsCoastline {
			edges = append(edges, e)
		}
	}
	return edges
}

// RiverEdges returns every edge carrying a traced river segment.
func (g *Graph) RiverEdges() []Edge {
	edges := make([]Edge, 0)
	for _, e := range g.Edges {
		if e.IsRiver {
			edges = append(edges, e)
		}
	}
	return edges
}

// LandRatio returns the share of non-ocean regions among regions with real
// geometry. Zero-geometry placeholders stay out of both sides of the ratio.
func (g *Graph) LandRatio() float64 {
	total := 0
	land := 0
	for _, r := range g.Regions {
		if !r.HasGeometry() {
			continue
		}
		total++
		if !r.IsOcean {
			land++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(land) / float64(total)
}

func (g *Graph) filterRegions(keep func(Region) bool) []Region {
	regions := make([]Region, 0)
	for _, r := range g.Regions {
		if keep(r) {
			regions = append(regions, r)
		}
	}
	return regions
}
