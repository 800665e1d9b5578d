package island

import (
	"encoding/json"
	"fmt"

	"github.com/glidecamp/islandgen/internal/biome"
	"github.com/glidecamp/islandgen/internal/geom"
)

// Serialization schema versions. Version 1 predates the drainage, moisture
// and biome passes; Deserialize backfills its missing fields with zero
// moisture and water, no biome, no lake or river flags and no downslope
// pointer.
const (
	// CodecVersion is the schema version Serialize writes.
	CodecVersion = 2
	// versionPrior is the oldest schema version Deserialize accepts.
	versionPrior = 1
)

type graphDTO struct {
	Version int         `json:"version"`
	Bounds  geom.Rect   `json:"bounds"`
	Regions []regionDTO `json:"regions"`
	Edges   []edgeDTO   `json:"edges"`
	Corners []cornerDTO `json:"corners"`
}

type regionDTO struct {
	ID        int         `json:"id"`
	Centroid  geom.Vec2   `json:"centroid"`
	Vertices  []geom.Vec2 `json:"vertices"`
	Elevation float64     `json:"elevation"`
	IsOcean   bool        `json:"isOcean"`
	IsLake    bool        `json:"isLake"`
	Neighbors []int       `json:"neighbors"`
	Moisture  float64     `json:"moisture"`
	Biome     string      `json:"biome"`
}

type edgeDTO struct {
	ID          int     `json:"id"`
	Regions     [2]int  `json:"regions"`
	Corners     [2]int  `json:"corners"`
	IsCoastline bool    `json:"isCoastline"`
	IsRiver     bool    `json:"isRiver"`
	RiverFlow   float64 `json:"riverFlow"`
}

type cornerDTO struct {
	ID              int       `json:"id"`
	Position        geom.Vec2 `json:"position"`
	Elevation       float64   `json:"elevation"`
	AdjacentRegions []int     `json:"adjacentRegions"`
	// Downslope is a pointer so version 1 payloads, which predate the
	// field, decode to the None sentinel instead of corner 0.
	Downslope *int    `json:"downslope"`
	Water     float64 `json:"water"`
	IsLake    bool    `json:"isLake"`
}

// Serialize encodes the graph as compact versioned JSON. Output bytes are
// deterministic for a given graph.
func Serialize(g *Graph) ([]byte, error) {
	data, err := json.Marshal(encodeGraph(g))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize graph: %w", err)
	}
	return data, nil
}

// SerializeIndent encodes the graph as indented JSON for humans.
func SerializeIndent(g *Graph) ([]byte, error) {
	data, err := json.MarshalIndent(encodeGraph(g), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize graph: %w", err)
	}
	return data, nil
}

// Deserialize decodes a serialized graph, accepting the current schema
// version and the one before it.
func Deserialize(data []byte) (*Graph, error) {
	var dto graphDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode graph: %w", err)
	}
	if dto.Version < versionPrior || dto.Version > CodecVersion {
		return nil, fmt.Errorf("unsupported graph version %d: supported versions are %d through %d",
			dto.Version, versionPrior, CodecVersion)
	}

	g := &Graph{
		Regions: make([]Region, len(dto.Regions)),
		Edges:   make([]Edge, len(dto.Edges)),
		Corners: make([]Corner, len(dto.Corners)),
		Bounds:  dto.Bounds,
	}

	for i, r := range dto.Regions {
		if r.ID != i {
			return nil, fmt.Errorf("region id %d does not match its index %d", r.ID, i)
		}
		tag := biome.Tag(r.Biome)
		if tag == "" {
			tag = biome.TagNone
		}
		g.Regions[i] = Region{
			ID:        r.ID,
			Centroid:  r.Centroid,
			Polygon:   r.Vertices,
			Elevation: r.Elevation,
			IsOcean:   r.IsOcean,
			IsLake:    r.IsLake,
			Moisture:  r.Moisture,
			Biome:     tag,
			Neighbors: r.Neighbors,
		}
	}

	for i, e := range dto.Edges {
		if e.ID != i {
			return nil, fmt.Errorf("edge id %d does not match its index %d", e.ID, i)
		}
		g.Edges[i] = Edge{
			ID:          e.ID,
			Regions:     e.Regions,
			Corners:     e.Corners,
			IsCoastline: e.IsCoastline,
			IsRiver:     e.IsRiver,
			RiverFlow:   e.RiverFlow,
		}
	}

	for i, c := range dto.Corners {
		if c.ID != i {
			return nil, fmt.Errorf("corner id %d does not match its index %d", c.ID, i)
		}
		downslope := None
		if c.Downslope != nil {
			downslope = *c.Downslope
		}
		g.Corners[i] = Corner{
			ID:        c.ID,
			Position:  c.Position,
			Elevation: c.Elevation,
			Regions:   c.AdjacentRegions,
			Downslope: downslope,
			Water:     c.Water,
			IsLake:    c.IsLake,
		}
	}

	return g, nil
}

func encodeGraph(g *Graph) graphDTO {
	dto := graphDTO{
		Version: CodecVersion,
		Bounds:  g.Bounds,
		Regions: make([]regionDTO, len(g.Regions)),
		Edges:   make([]edgeDTO, len(g.Edges)),
		Corners: make([]cornerDTO, len(g.Corners)),
	}

	for i, r := range g.Regions {
		dto.Regions[i] = regionDTO{
			ID:        r.ID,
			Centroid:  r.Centroid,
			Vertices:  r.Polygon,
			Elevation: r.Elevation,
			IsOcean:   r.IsOcean,
			IsLake:    r.IsLake,
			Neighbors: r.Neighbors,
			Moisture:  r.Moisture,
			Biome:     string(r.Biome),
		}
	}

	for i, e := range g.Edges {
		dto.Edges[i] = edgeDTO{
			ID:          e.ID,
			Regions:     e.Regions,
			Corners:     e.Corners,
			IsCoastline: e.IsCoastline,
			IsRiver:     e.IsRiver,
			RiverFlow:   e.RiverFlow,
		}
	}

	for i, c := range g.Corners {
		downslope := c.Downslope
		dto.Corners[i] = cornerDTO{
			ID:              c.ID,
			Position:        c.Position,
			Elevation:       c.Elevation,
			AdjacentRegions: c.Regions,
			Downslope:       &downslope,
			Water:           c.Water,
			IsLake:          c.IsLake,
		}
	}

	return dto
}
