package island

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/glidecamp/islandgen/internal/geom"
)

// spatialIndex holds region bounding boxes in an R-tree. Boxes overlap, so
// point lookups refine candidates with a point-in-polygon test.
type spatialIndex struct {
	tree rtree.RTreeG[int]
}

func newSpatialIndex(regions []Region) *spatialIndex {
	idx := &spatialIndex{}
	for _, r := range regions {
		if !r.HasGeometry() {
			continue
		}
		b := geom.PolygonBounds(r.Polygon)
		idx.tree.Insert(
			[2]float64{b.Min.X, b.Min.Y},
			[2]float64{b.Max.X, b.Max.Y},
			r.ID,
		)
	}
	return idx
}

// findRegion returns the id of a region whose polygon contains the point.
// Candidates come from the box query; the polygon test picks the actual
// container. When several polygons touch the point the lowest id wins, so
// lookups on shared boundaries stay deterministic.
func (idx *spatialIndex) findRegion(regions []Region, x, y float64) (int, bool) {
	p := geom.Vec2{X: x, Y: y}
	point := [2]float64{x, y}

	found := None
	idx.tree.Search(point, point, func(_, _ [2]float64, id int) bool {
		if !geom.PointInPolygon(p, regions[id].Polygon) {
			return true
		}
		if found == None || id < found {
			found = id
		}
		return true
	})
	if found == None {
		return None, false
	}
	return found, true
}

// queryBounds returns the ids of all regions whose box overlaps the query
// rectangle, ascending.
func (idx *spatialIndex) queryBounds(bounds geom.Rect) []int {
	ids := make([]int, 0)
	idx.tree.Search(
		[2]float64{bounds.Min.X, bounds.Min.Y},
		[2]float64{bounds.Max.X, bounds.Max.Y},
		func(_, _ [2]float64, id int) bool {
			ids = append(ids, id)
			return true
		},
	)
	sort.Ints(ids)
	return ids
}
