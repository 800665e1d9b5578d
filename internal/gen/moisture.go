package gen

import (
	"github.com/glidecamp/islandgen/internal/geom"
	"github.com/glidecamp/islandgen/internal/island"
)

// propagateMoisture spreads moisture outward from water. Ocean and lake
// regions hold 1.0; land bordering a river edge seeds at RiverMoisture.
// Propagation is plain breadth-first with per-step decay and an uphill
// penalty; a region is revisited whenever a wetter path reaches it, and the
// shrinking candidates guarantee the queue drains.
func (b *buildGraph) propagateMoisture() {
	m := b.cfg.Moisture

	queue := make([]int, 0, len(b.regions))
	for _, r := range b.regions {
		if r.ocean || r.lake {
			r.moisture = 1
			queue = append(queue, r.id)
		}
	}

	for _, e := range b.edges {
		if !e.river {
			continue
		}
		for _, rid := range e.regions {
			if rid == island.None {
				continue
			}
			r := b.regions[rid]
			if r.ocean || r.lake || r.moisture >= m.RiverMoisture {
				continue
			}
			r.moisture = m.RiverMoisture
			queue = append(queue, rid)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		r := b.regions[queue[qi]]
		for _, nid := range r.neighbors {
			n := b.regions[nid]
			if n.ocean || n.lake {
				continue
			}
			candidate := r.moisture * m.Decay
			if n.elevation > r.elevation {
				candidate *= m.UphillPenalty
			}
			if candidate > n.moisture {
				n.moisture = candidate
				queue = append(queue, nid)
			}
		}
	}

	for _, r := range b.regions {
		r.moisture = geom.Clamp(r.moisture, 0, 1)
	}
}
