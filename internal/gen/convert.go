package gen

import (
	"sort"

	"github.com/glidecamp/islandgen/internal/biome"
	"github.com/glidecamp/islandgen/internal/geom"
	"github.com/glidecamp/islandgen/internal/island"
)

// classifyBiomes tags every region. Lakes bypass the classifier; ocean
// regions flow through it and pick up their water tags from elevation.
func (b *buildGraph) classifyBiomes(c biome.Classifier) {
	for _, r := range b.regions {
		if r.lake {
			r.biomeTag = biome.TagLake
			continue
		}
		r.biomeTag = c.Classify(r.elevation, r.moisture)
	}
}

// publish converts the scratch graph into the immutable island.Graph,
// leaving all build-time state (ring order, boundary flags, site positions)
// behind. Every published slice is non-nil so the serialized form stays
// stable.
func (b *buildGraph) publish() *island.Graph {
	g := &island.Graph{
		Regions: make([]island.Region, len(b.regions)),
		Edges:   make([]island.Edge, len(b.edges)),
		Corners: make([]island.Corner, len(b.corners)),
	}

	var bounds geom.Rect
	boundsSet := false
	for i, r := range b.regions {
		polygon := r.polygon
		if polygon == nil {
			polygon = []geom.Vec2{}
		}
		neighbors := r.neighbors
		if neighbors == nil {
			neighbors = []int{}
		}
		tag := r.biomeTag
		if tag == "" {
			tag = biome.TagNone
		}
		g.Regions[i] = island.Region{
			ID:        r.id,
			Centroid:  r.centroid,
			Polygon:   polygon,
			Elevation: r.elevation,
			IsOcean:   r.ocean,
			IsLake:    r.lake,
			Moisture:  r.moisture,
			Biome:     tag,
			Neighbors: neighbors,
		}
		if len(polygon) > 0 {
			pb := geom.PolygonBounds(polygon)
			if !boundsSet {
				bounds = pb
				boundsSet = true
			} else {
				bounds = bounds.Union(pb)
			}
		}
	}
	if !boundsSet {
		bounds = geom.RectAround(b.cfg.Center)
	}
	g.Bounds = bounds

	for i, e := range b.edges {
		g.Edges[i] = island.Edge{
			ID:          e.id,
			Regions:     e.regions,
			Corners:     e.corners,
			IsCoastline: e.coastline,
			IsRiver:     e.river,
			RiverFlow:   e.flow,
		}
	}

	for i, c := range b.corners {
		regions := make([]int, len(c.regions))
		copy(regions, c.regions)
		sort.Ints(regions)
		g.Corners[i] = island.Corner{
			ID:        c.id,
			Position:  c.pos,
			Elevation: c.elevation,
			Regions:   regions,
			Downslope: c.downslope,
			Water:     c.water,
			IsLake:    c.isLake,
		}
	}

	return g
}
