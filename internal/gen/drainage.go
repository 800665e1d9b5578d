package gen

import (
	"container/heap"
	"sort"
)

const (
	// lakeElevation is the fixed shallow-water depth lake corners take.
	// Negative keeps every drainage chain ending underwater.
	lakeElevation = -0.05
	// fillEpsilon lifts a filled corner just above its pour path so the
	// downslope pointers stay strictly decreasing.
	fillEpsilon = 1e-5
	// inlandFraction is how close to the rim (as a fraction of the radius)
	// an ocean component may reach and still count as an inland sea.
	inlandFraction = 0.88
)

// floodItem is a priority-flood frontier entry. The elevation is captured at
// push time, after any fill applied to the corner.
type floodItem struct {
	corner    int
	elevation float64
}

// floodHeap is a min-heap ordered by elevation, ties broken by corner id so
// the pop order is deterministic.
type floodHeap []floodItem

func (h floodHeap) Len() int { return len(h) }

func (h floodHeap) Less(i, j int) bool {
	if h[i].elevation != h[j].elevation {
		return h[i].elevation < h[j].elevation
	}
	return h[i].corner < h[j].corner
}

func (h floodHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *floodHeap) Push(x any) { *h = append(*h, x.(floodItem)) }

func (h *floodHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// depression is a group of corners filled through a common pour point.
type depression struct {
	pourElev float64
	members  []int
	maxDepth float64
}

// fillSinks runs the priority flood: every water corner seeds the frontier,
// and any corner lower than the frontier that reaches it gets raised just
// above it. Filled corners group by pour point; the deepest groups passing
// the size and depth gates become lakes. Returns the number of lakes made.
func (b *buildGraph) fillSinks() int {
	lakes := b.cfg.Rivers.Lakes

	visited := make([]bool, len(b.corners))
	group := make([]int, len(b.corners))
	for i := range group {
		group[i] = -1
	}

	frontier := &floodHeap{}
	for i, c := range b.corners {
		if c.elevation <= 0 {
			visited[i] = true
			*frontier = append(*frontier, floodItem{corner: i, elevation: c.elevation})
		}
	}
	heap.Init(frontier)

	var depressions []*depression
	for frontier.Len() > 0 {
		f := heap.Pop(frontier).(floodItem)
		pourGroup := group[f.corner]

		for _, nb := range b.corners[f.corner].neighbors {
			if visited[nb] {
				continue
			}
			visited[nb] = true

			elev := b.corners[nb].elevation
			if elev < f.elevation {
				if pourGroup == -1 {
					pourGroup = len(depressions)
					depressions = append(depressions, &depression{pourElev: f.elevation})
				}
				d := depressions[pourGroup]
				d.members = append(d.members, nb)
				if depth := d.pourElev - elev; depth > d.maxDepth {
					d.maxDepth = depth
				}
				group[nb] = pourGroup

				elev = f.elevation + fillEpsilon
				b.corners[nb].elevation = elev
			}
			heap.Push(frontier, floodItem{corner: nb, elevation: elev})
		}
	}

	candidates := make([]int, 0, len(depressions))
	for i, d := range depressions {
		if len(d.members) >= lakes.MinLakeCorners && d.maxDepth >= lakes.MinLakeDepth {
			candidates = append(candidates, i)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := depressions[candidates[i]], depressions[candidates[j]]
		if di.maxDepth != dj.maxDepth {
			return di.maxDepth > dj.maxDepth
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > lakes.MaxLakes {
		candidates = candidates[:lakes.MaxLakes]
	}

	for _, gi := range candidates {
		for _, cid := range depressions[gi].members {
			c := b.corners[cid]
			c.elevation = lakeElevation
			c.isLake = true
		}
	}
	return len(candidates)
}

// reclassifyLakeRegions flips a land region to lake when most of its ring
// corners belong to a lake.
func (b *buildGraph) reclassifyLakeRegions() {
	for _, r := range b.regions {
		if r.degenerate || r.ocean || len(r.corners) == 0 {
			continue
		}
		lakeCorners := 0
		for _, cid := range r.corners {
			if b.corners[cid].isLake {
				lakeCorners++
			}
		}
		if lakeCorners*2 > len(r.corners) {
			r.lake = true
		}
	}
}

// reclassifyInlandSeas flood-fills connected ocean components and converts
// to lake any component that never reaches the outer rim: no boundary
// region, and every centroid inside inlandFraction of the radius. Water
// corners of converted regions become lake corners so river tracing treats
// the sea as a lake. Returns the number of components converted.
func (b *buildGraph) reclassifyInlandSeas() int {
	visited := make([]bool, len(b.regions))
	limit := b.cfg.Radius * inlandFraction
	converted := 0

	for start, r := range b.regions {
		if visited[start] || !r.ocean || r.degenerate {
			continue
		}

		component := []int{start}
		visited[start] = true
		inland := true
		for qi := 0; qi < len(component); qi++ {
			cr := b.regions[component[qi]]
			if cr.boundary || cr.centroid.Dist(b.cfg.Center) > limit {
				inland = false
			}
			for _, nb := range cr.neighbors {
				if visited[nb] || !b.regions[nb].ocean || b.regions[nb].degenerate {
					continue
				}
				visited[nb] = true
				component = append(component, nb)
			}
		}
		if !inland {
			continue
		}

		for _, id := range component {
			cr := b.regions[id]
			cr.ocean = false
			cr.lake = true
			for _, cid := range cr.corners {
				if b.corners[cid].elevation <= 0 {
					b.corners[cid].isLake = true
				}
			}
		}
		converted++
	}
	return converted
}
