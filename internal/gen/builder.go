package gen

import (
	"fmt"
	"math"
	"sort"

	"github.com/glidecamp/islandgen/internal/biome"
	"github.com/glidecamp/islandgen/internal/geom"
	"github.com/glidecamp/islandgen/internal/island"
	"github.com/glidecamp/islandgen/internal/mesh"
	"github.com/glidecamp/islandgen/internal/noise"
	"github.com/glidecamp/islandgen/internal/points"
)

const (
	// cornerKeyScale rounds corner positions for deduplication across the
	// cell walks that share them.
	cornerKeyScale = 1e6
	// oceanFloor is the elevation forced onto boundary-ring regions,
	// degenerate placeholders and the mask outside the effective radius.
	oceanFloor = -1.0
	// falloffDepth is the magnitude the mask sinks to just inside the
	// effective radius.
	falloffDepth = 0.65
)

// shapeParams tunes the angular coastline channel. It is sampled on
// unit-circle coordinates, so frequency 1 yields a handful of lobes around
// the island.
var shapeParams = noise.Params{Octaves: 3, Lacunarity: 2, Gain: 0.5, Frequency: 1}

type cornerKey struct {
	x, y int64
}

func keyFor(p geom.Vec2) cornerKey {
	return cornerKey{
		x: int64(math.Round(p.X * cornerKeyScale)),
		y: int64(math.Round(p.Y * cornerKeyScale)),
	}
}

// buildCorner, buildRegion and buildEdge are the pipeline's scratch
// entities. They carry working state (ring order, boundary flags) that the
// published island.Graph never sees.
type buildCorner struct {
	id        int
	pos       geom.Vec2
	elevation float64
	regions   []int
	neighbors []int
	downslope int
	water     float64
	isLake    bool
}

type buildRegion struct {
	id         int
	site       geom.Vec2
	centroid   geom.Vec2
	polygon    []geom.Vec2
	corners    []int
	neighbors  []int
	elevation  float64
	ocean      bool
	lake       bool
	moisture   float64
	biomeTag   biome.Tag
	boundary   bool
	degenerate bool
}

type buildEdge struct {
	id        int
	regions   [2]int
	corners   [2]int
	coastline bool
	river     bool
	flow      float64
}

type buildGraph struct {
	cfg     *Config
	sampler *noise.Sampler

	regions []*buildRegion
	corners []*buildCorner
	edges   []*buildEdge

	cornerIndex map[cornerKey]int
	edgeIndex   map[[2]int]int
}

// newBuildGraph tessellates interior+boundary points inside a ghost frame,
// extracts regions, shared corners, neighbors and edges. The frame keeps
// every real cell closed; frame cells themselves are discarded, leaving
// their edges open toward None.
func newBuildGraph(cfg *Config, pts *points.Set, sampler *noise.Sampler) (*buildGraph, error) {
	real := len(pts.Interior) + len(pts.Boundary)
	sites := make([]geom.Vec2, 0, real+len(pts.Boundary))
	sites = append(sites, pts.Interior...)
	sites = append(sites, pts.Boundary...)
	sites = append(sites, points.Ring(cfg.Center, cfg.Radius*points.FrameScale, len(pts.Boundary))...)

	tri, err := mesh.Build(sites)
	if err != nil {
		return nil, fmt.Errorf("failed to build tessellation: %w", err)
	}

	b := &buildGraph{
		cfg:         cfg,
		sampler:     sampler,
		regions:     make([]*buildRegion, 0, real),
		cornerIndex: make(map[cornerKey]int),
		edgeIndex:   make(map[[2]int]int),
	}

	for i := 0; i < real; i++ {
		r := &buildRegion{
			id:       i,
			site:     sites[i],
			boundary: i >= len(pts.Interior),
		}
		b.regions = append(b.regions, r)

		ring, closed := tri.CellPolygon(i)
		if !closed || len(ring) < 3 {
			b.markDegenerate(r)
			continue
		}

		cornerIDs := b.cornerRing(ring)
		if len(cornerIDs) < 3 {
			b.markDegenerate(r)
			continue
		}

		r.polygon = closeRing(ring)
		r.centroid = geom.PolygonCentroid(r.polygon)
		r.corners = cornerIDs
		for _, cid := range cornerIDs {
			b.addCornerRegion(cid, r.id)
		}
	}

	for i := 0; i < real; i++ {
		b.regions[i].neighbors = realNeighbors(tri.Neighbors(i), real)
	}

	b.deriveEdges()
	return b, nil
}

// markDegenerate turns a region into the zero-geometry ocean placeholder
// used for cells the tessellation could not close.
func (b *buildGraph) markDegenerate(r *buildRegion) {
	r.degenerate = true
	r.polygon = []geom.Vec2{}
	r.corners = []int{}
	r.centroid = r.site
	r.elevation = oceanFloor
	r.ocean = true
}

// cornerRing deduplicates a cell's vertices into shared corner ids,
// dropping consecutive repeats and a wrap-around repeat.
func (b *buildGraph) cornerRing(ring []geom.Vec2) []int {
	ids := make([]int, 0, len(ring))
	for _, v := range ring {
		id := b.cornerFor(v)
		if n := len(ids); n > 0 && ids[n-1] == id {
			continue
		}
		ids = append(ids, id)
	}
	if n := len(ids); n > 1 && ids[0] == ids[n-1] {
		ids = ids[:n-1]
	}
	return ids
}

func (b *buildGraph) cornerFor(p geom.Vec2) int {
	key := keyFor(p)
	if id, ok := b.cornerIndex[key]; ok {
		return id
	}
	id := len(b.corners)
	b.corners = append(b.corners, &buildCorner{
		id:        id,
		pos:       p,
		downslope: island.None,
	})
	b.cornerIndex[key] = id
	return id
}

func (b *buildGraph) addCornerRegion(cid, rid int) {
	c := b.corners[cid]
	for _, existing := range c.regions {
		if existing == rid {
			return
		}
	}
	c.regions = append(c.regions, rid)
}

// realNeighbors filters tessellation adjacency down to real region ids,
// sorted ascending.
func realNeighbors(adjacent []int, real int) []int {
	out := make([]int, 0, len(adjacent))
	for _, n := range adjacent {
		if n < real {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	j := 0
	for i := 0; i < len(out); i++ {
		if i > 0 && out[i] == out[i-1] {
			continue
		}
		out[j] = out[i]
		j++
	}
	return out[:j]
}

func cornerPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// deriveEdges walks every region's corner ring and creates one edge per
// unique corner pair. The first region to walk a pair owns slot 0; a second
// region fills slot 1; pairs never claimed twice stay open toward None.
// Corner adjacency used by drainage comes straight from the edge list.
func (b *buildGraph) deriveEdges() {
	for _, r := range b.regions {
		if r.degenerate {
			continue
		}
		k := len(r.corners)
		for i := 0; i < k; i++ {
			ca := r.corners[i]
			cb := r.corners[(i+1)%k]
			if ca == cb {
				continue
			}
			key := cornerPair(ca, cb)
			if id, ok := b.edgeIndex[key]; ok {
				e := b.edges[id]
				if e.regions[1] == island.None && e.regions[0] != r.id {
					e.regions[1] = r.id
				}
				continue
			}
			e := &buildEdge{
				id:      len(b.edges),
				regions: [2]int{r.id, island.None},
				corners: [2]int{ca, cb},
			}
			b.edgeIndex[key] = e.id
			b.edges = append(b.edges, e)
		}
	}

	for _, e := range b.edges {
		b.corners[e.corners[0]].neighbors = append(b.corners[e.corners[0]].neighbors, e.corners[1])
		b.corners[e.corners[1]].neighbors = append(b.corners[e.corners[1]].neighbors, e.corners[0])
	}
	for _, c := range b.corners {
		sort.Ints(c.neighbors)
	}
}

// markCoastlines recomputes coastline flags. The None side of a boundary
// edge counts as ocean. Runs once after elevation and again after drainage
// reclassifies regions.
func (b *buildGraph) markCoastlines() {
	for _, e := range b.edges {
		left := b.regions[e.regions[0]].ocean
		right := true
		if e.regions[1] != island.None {
			right = b.regions[e.regions[1]].ocean
		}
		e.coastline = left != right
	}
}

func closeRing(ring []geom.Vec2) []geom.Vec2 {
	closed := make([]geom.Vec2, 0, len(ring)+1)
	closed = append(closed, ring...)
	closed = append(closed, ring[0])
	return closed
}
