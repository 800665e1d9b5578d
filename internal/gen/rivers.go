package gen

import (
	"sort"

	"github.com/glidecamp/islandgen/internal/island"
)

// assignDownslopes points every land corner at its lowest strictly lower
// neighbor. Ties keep the smallest corner id. Water corners carry None;
// after sink filling a land corner without a lower neighbor should not
// exist.
func (b *buildGraph) assignDownslopes() {
	for _, c := range b.corners {
		c.downslope = island.None
		if c.elevation <= 0 {
			continue
		}
		best := island.None
		bestElev := c.elevation
		for _, nb := range c.neighbors {
			if e := b.corners[nb].elevation; e < bestElev {
				best = nb
				bestElev = e
			}
		}
		c.downslope = best
	}
}

// accumulateFlow drops rainfall on every land corner and pushes accumulated
// water down the downslope pointers in descending elevation order, so each
// corner is complete before it contributes downstream.
func (b *buildGraph) accumulateFlow() {
	land := make([]int, 0, len(b.corners))
	for _, c := range b.corners {
		if c.elevation > 0 {
			c.water = b.cfg.Rivers.Rainfall
			land = append(land, c.id)
		} else {
			c.water = 0
		}
	}

	sort.Slice(land, func(i, j int) bool {
		ci, cj := b.corners[land[i]], b.corners[land[j]]
		if ci.elevation != cj.elevation {
			return ci.elevation > cj.elevation
		}
		return ci.id < cj.id
	})

	for _, id := range land {
		c := b.corners[id]
		if c.downslope != island.None {
			b.corners[c.downslope].water += c.water
		}
	}
}

// markRivers finds river mouths and traces their tributaries upstream,
// marking every traversed edge. A mouth is a land corner with at least
// Threshold accumulated water draining directly into ocean water; lake
// corners never make mouths, so lakes have no outflow rivers. Tracing
// follows the reverse downslope map while the upstream corner still carries
// MinTributary flow. Returns the number of river edges marked.
func (b *buildGraph) markRivers() int {
	rivers := b.cfg.Rivers

	upstream := make([][]int, len(b.corners))
	for _, c := range b.corners {
		if c.downslope != island.None {
			upstream[c.downslope] = append(upstream[c.downslope], c.id)
		}
	}

	for _, c := range b.corners {
		if c.elevation <= 0 || c.water < rivers.Threshold || c.downslope == island.None {
			continue
		}
		mouth := b.corners[c.downslope]
		if mouth.elevation > 0 || mouth.isLake {
			continue
		}

		b.markRiverEdge(c.id, c.downslope, c.water)
		stack := []int{c.id}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, up := range upstream[cur] {
				if b.corners[up].water < rivers.MinTributary {
					continue
				}
				b.markRiverEdge(up, cur, b.corners[up].water)
				stack = append(stack, up)
			}
		}
	}

	count := 0
	for _, e := range b.edges {
		if e.river {
			count++
		}
	}
	return count
}

func (b *buildGraph) markRiverEdge(from, to int, flow float64) {
	id, ok := b.edgeIndex[cornerPair(from, to)]
	if !ok {
		return
	}
	e := b.edges[id]
	e.river = true
	if flow > e.flow {
		e.flow = flow
	}
}
