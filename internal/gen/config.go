// Package gen runs the island generation pipeline: point placement, graph
// extraction, elevation, drainage, rivers, moisture and biomes, publishing
// an island.Graph.
package gen

import (
	"encoding/json"
	"fmt"

	"github.com/glidecamp/islandgen/internal/biome"
	"github.com/glidecamp/islandgen/internal/geom"
)

// Config is the full generation input. Identical configs with identical
// seeds produce byte-identical serialized graphs.
type Config struct {
	Seed            int64          `json:"seed"`
	RegionCount     int            `json:"regionCount"`
	Radius          float64        `json:"radius"`
	Center          geom.Vec2      `json:"center"`
	LloydIterations int            `json:"lloydIterations"`
	Shape           ShapeConfig    `json:"shape"`
	Rivers          RiverConfig    `json:"rivers"`
	Moisture        MoistureConfig `json:"moisture"`
	Biome           BiomeConfig    `json:"biome"`
}

// ShapeConfig tunes the island mask and the elevation noise channel.
type ShapeConfig struct {
	// InteriorBoost lifts elevation at the island center, tapering to zero
	// at FalloffStart.
	InteriorBoost float64 `json:"interiorBoost"`
	// NoiseAmplitude scales the elevation noise added on top of the mask.
	NoiseAmplitude float64 `json:"noiseAmplitude"`
	// NoiseFrequency is in cycles per world unit, so it pairs with Radius.
	NoiseFrequency float64 `json:"noiseFrequency"`
	// FalloffStart is the normalized distance where the mask starts its
	// smooth drop toward the coast.
	FalloffStart float64 `json:"falloffStart"`
	// ShapeVariation scales the angular wobble of the effective radius.
	ShapeVariation float64 `json:"shapeVariation"`
	Octaves        int     `json:"octaves"`
	Lacunarity     float64 `json:"lacunarity"`
	Gain           float64 `json:"gain"`
	Ridged         bool    `json:"ridged"`
	// WarpAmplitude is in world units; zero disables domain warping.
	WarpAmplitude float64 `json:"warpAmplitude"`
	WarpFrequency float64 `json:"warpFrequency"`
}

// RiverConfig tunes flow accumulation and river tracing.
type RiverConfig struct {
	// Rainfall is the initial water on every land corner.
	Rainfall float64 `json:"rainfall"`
	// Threshold is the accumulated flow a corner needs to become a mouth.
	Threshold float64 `json:"threshold"`
	// MinTributary is the flow below which upstream tracing stops.
	MinTributary float64    `json:"minTributary"`
	Lakes        LakeConfig `json:"lakes"`
}

// LakeConfig tunes which filled depressions become lakes.
type LakeConfig struct {
	MinLakeDepth   float64 `json:"minLakeDepth"`
	MinLakeCorners int     `json:"minLakeCorners"`
	MaxLakes       int     `json:"maxLakes"`
}

// MoistureConfig tunes breadth-first moisture propagation.
type MoistureConfig struct {
	Decay         float64 `json:"decay"`
	UphillPenalty float64 `json:"uphillPenalty"`
	// RiverMoisture seeds land regions bordering a river edge.
	RiverMoisture float64 `json:"riverMoisture"`
}

// BiomeConfig selects the classification scheme: a named preset, or an
// inline preset overriding the name.
type BiomeConfig struct {
	Preset string        `json:"preset"`
	Inline *biome.Preset `json:"inline,omitempty"`
}

// Classifier resolves the configured classification scheme. Unknown preset
// names fail here rather than falling back silently.
func (bc BiomeConfig) Classifier() (biome.Classifier, error) {
	if bc.Inline != nil {
		if err := bc.Inline.Validate(); err != nil {
			return nil, fmt.Errorf("invalid inline biome preset: %w", err)
		}
		return *bc.Inline, nil
	}
	p, err := biome.ByName(bc.Preset)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the config for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.RegionCount < 1 {
		return fmt.Errorf("regionCount must be at least 1, got %d", c.RegionCount)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", c.Radius)
	}
	if c.LloydIterations < 0 {
		return fmt.Errorf("lloydIterations must not be negative, got %d", c.LloydIterations)
	}
	if err := c.Shape.validate(); err != nil {
		return err
	}
	if err := c.Rivers.validate(); err != nil {
		return err
	}
	return c.Moisture.validate()
}

func (s ShapeConfig) validate() error {
	if s.InteriorBoost < 0 {
		return fmt.Errorf("shape.interiorBoost must not be negative, got %g", s.InteriorBoost)
	}
	if s.NoiseAmplitude < 0 {
		return fmt.Errorf("shape.noiseAmplitude must not be negative, got %g", s.NoiseAmplitude)
	}
	if s.NoiseFrequency <= 0 {
		return fmt.Errorf("shape.noiseFrequency must be positive, got %g", s.NoiseFrequency)
	}
	if s.FalloffStart <= 0 || s.FalloffStart >= 1 {
		return fmt.Errorf("shape.falloffStart must be inside (0, 1), got %g", s.FalloffStart)
	}
	if s.ShapeVariation < 0 || s.ShapeVariation > 0.95 {
		return fmt.Errorf("shape.shapeVariation must be within [0, 0.95], got %g", s.ShapeVariation)
	}
	if s.Octaves < 1 {
		return fmt.Errorf("shape.octaves must be at least 1, got %d", s.Octaves)
	}
	if s.Lacunarity < 0 {
		return fmt.Errorf("shape.lacunarity must not be negative, got %g", s.Lacunarity)
	}
	if s.Gain < 0 {
		return fmt.Errorf("shape.gain must not be negative, got %g", s.Gain)
	}
	if s.WarpAmplitude < 0 {
		return fmt.Errorf("shape.warpAmplitude must not be negative, got %g", s.WarpAmplitude)
	}
	if s.WarpAmplitude > 0 && s.WarpFrequency <= 0 {
		return fmt.Errorf("shape.warpFrequency must be positive when warp is enabled, got %g", s.WarpFrequency)
	}
	return nil
}

func (r RiverConfig) validate() error {
	if r.Rainfall <= 0 {
		return fmt.Errorf("rivers.rainfall must be positive, got %g", r.Rainfall)
	}
	if r.Threshold <= 0 {
		return fmt.Errorf("rivers.threshold must be positive, got %g", r.Threshold)
	}
	if r.MinTributary < 0 {
		return fmt.Errorf("rivers.minTributary must not be negative, got %g", r.MinTributary)
	}
	if r.Lakes.MinLakeCorners < 1 {
		return fmt.Errorf("rivers.lakes.minLakeCorners must be at least 1, got %d", r.Lakes.MinLakeCorners)
	}
	if r.Lakes.MinLakeDepth < 0 {
		return fmt.Errorf("rivers.lakes.minLakeDepth must not be negative, got %g", r.Lakes.MinLakeDepth)
	}
	if r.Lakes.MaxLakes < 0 {
		return fmt.Errorf("rivers.lakes.maxLakes must not be negative, got %d", r.Lakes.MaxLakes)
	}
	return nil
}

func (m MoistureConfig) validate() error {
	if m.Decay <= 0 || m.Decay > 1 {
		return fmt.Errorf("moisture.decay must be inside (0, 1], got %g", m.Decay)
	}
	if m.UphillPenalty <= 0 || m.UphillPenalty > 1 {
		return fmt.Errorf("moisture.uphillPenalty must be inside (0, 1], got %g", m.UphillPenalty)
	}
	if m.RiverMoisture < 0 || m.RiverMoisture > 1 {
		return fmt.Errorf("moisture.riverMoisture must be within [0, 1], got %g", m.RiverMoisture)
	}
	return nil
}

// ApplyJSON overlays override fields onto the config. Nested objects merge
// field by field: overriding rivers.lakes.maxLakes leaves the rest of the
// rivers block untouched.
func (c *Config) ApplyJSON(data []byte) error {
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to apply config overrides: %w", err)
	}
	return nil
}
