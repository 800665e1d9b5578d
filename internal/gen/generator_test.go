package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glidecamp/islandgen/internal/biome"
	"github.com/glidecamp/islandgen/internal/island"
	"github.com/glidecamp/islandgen/internal/points"
)

// testConfig is a small, fast island that still exercises every pipeline
// phase.
func testConfig(seed int64) Config {
	return Config{
		Seed:            seed,
		RegionCount:     150,
		Radius:          4000,
		LloydIterations: 1,
		Shape: ShapeConfig{
			InteriorBoost:  0.45,
			NoiseAmplitude: 0.30,
			NoiseFrequency: 0.0008,
			FalloffStart:   0.7,
			ShapeVariation: 0.3,
			Octaves:        4,
			Lacunarity:     2,
			Gain:           0.5,
		},
		Rivers: RiverConfig{
			Rainfall:     1,
			Threshold:    5,
			MinTributary: 2,
			Lakes: LakeConfig{
				MinLakeDepth:   0.01,
				MinLakeCorners: 3,
				MaxLakes:       3,
			},
		},
		Moisture: MoistureConfig{
			Decay:         0.85,
			UphillPenalty: 0.6,
			RiverMoisture: 0.8,
		},
		Biome: BiomeConfig{Preset: "tropical"},
	}
}

func generate(t *testing.T, cfg Config, opts ...Option) *island.Graph {
	t.Helper()
	g, err := New(cfg, opts...)
	require.NoError(t, err)
	graph, err := g.Generate()
	require.NoError(t, err)
	return graph
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig(7)

	first, err := island.Serialize(generate(t, cfg))
	require.NoError(t, err)
	second, err := island.Serialize(generate(t, cfg))
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed and config must serialize to identical bytes")

	other, err := island.Serialize(generate(t, testConfig(8)))
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "different seeds must diverge")
}

func TestDrainageCompleteness(t *testing.T) {
	graph := generate(t, testConfig(11))

	for _, c := range graph.Corners {
		if c.Elevation <= 0 {
			continue
		}
		cur := c
		steps := 0
		for cur.Elevation > 0 {
			require.NotEqual(t, island.None, cur.Downslope,
				"land corner %d stranded at corner %d with no downslope", c.ID, cur.ID)
			next := graph.Corners[cur.Downslope]
			assert.Less(t, next.Elevation, cur.Elevation,
				"downslope from corner %d must strictly descend", cur.ID)
			cur = next
			steps++
			require.LessOrEqual(t, steps, len(graph.Corners),
				"downslope chain from corner %d did not terminate", c.ID)
		}
	}
}

func TestBoundaryRegionsAlwaysOcean(t *testing.T) {
	cfg := testConfig(3)
	graph := generate(t, cfg)

	boundary := points.BoundaryCount(cfg.RegionCount)
	require.Len(t, graph.Regions, cfg.RegionCount+boundary)

	for id := cfg.RegionCount; id < len(graph.Regions); id++ {
		r := graph.Regions[id]
		assert.True(t, r.IsOcean, "boundary region %d must be ocean", id)
		assert.False(t, r.IsLake, "boundary region %d must not be a lake", id)
		assert.LessOrEqual(t, r.Elevation, 0.0)
	}
}

func TestMoistureRange(t *testing.T) {
	graph := generate(t, testConfig(5))

	for _, r := range graph.Regions {
		assert.GreaterOrEqual(t, r.Moisture, 0.0, "region %d moisture below range", r.ID)
		assert.LessOrEqual(t, r.Moisture, 1.0, "region %d moisture above range", r.ID)
		if r.IsOcean || r.IsLake {
			assert.Equal(t, 1.0, r.Moisture, "water region %d must hold full moisture", r.ID)
		}
	}
}

func TestCoastlineConsistency(t *testing.T) {
	graph := generate(t, testConfig(9))

	oceanSide := func(id int) bool {
		if id == island.None {
			return true
		}
		return graph.Regions[id].IsOcean
	}

	seen := 0
	for _, e := range graph.Edges {
		left := oceanSide(e.Regions[0])
		right := oceanSide(e.Regions[1])
		if e.IsCoastline {
			seen++
			assert.NotEqual(t, left, right,
				"coastline edge %d must have exactly one ocean side", e.ID)
		} else {
			assert.Equal(t, left, right,
				"non-coastline edge %d must not separate ocean from land", e.ID)
		}
	}
	assert.Positive(t, seen, "an island must have a coastline")
}

func TestEdgeCornerSharing(t *testing.T) {
	graph := generate(t, testConfig(13))

	adjacent := func(c island.Corner, rid int) bool {
		for _, r := range c.Regions {
			if r == rid {
				return true
			}
		}
		return false
	}

	for _, e := range graph.Edges {
		for _, rid := range e.Regions {
			if rid == island.None {
				continue
			}
			for _, cid := range e.Corners {
				assert.True(t, adjacent(graph.Corners[cid], rid),
					"edge %d corner %d must be adjacent to region %d", e.ID, cid, rid)
			}
		}
	}
}

func TestScenarioTropicalVolcanic(t *testing.T) {
	cfg, err := Template("tropical_volcanic")
	require.NoError(t, err)
	cfg.Seed = 42

	graph := generate(t, cfg)

	ratio := graph.LandRatio()
	assert.Greater(t, ratio, 0.2, "land ratio collapsed")
	assert.Less(t, ratio, 0.7, "land ratio exploded")

	assert.NotEmpty(t, graph.RiverEdges(), "expected at least one river")

	for _, r := range graph.Regions {
		assert.False(t, r.IsOcean && r.IsLake,
			"region %d is both ocean and lake", r.ID)
	}
	for _, e := range graph.RiverEdges() {
		assert.Positive(t, e.RiverFlow, "river edge %d carries no flow", e.ID)
	}
}

func TestFlatDiskAllOcean(t *testing.T) {
	cfg := testConfig(42)
	cfg.Shape.InteriorBoost = 0
	cfg.Shape.NoiseAmplitude = 0

	graph := generate(t, cfg)

	for _, r := range graph.Regions {
		assert.True(t, r.IsOcean, "region %d emerged without elevation input", r.ID)
		assert.False(t, r.IsLake)
	}
	assert.Empty(t, graph.RiverEdges())
	assert.Zero(t, graph.LandRatio())
}

func TestObserverPhases(t *testing.T) {
	var phases []string
	generate(t, testConfig(2), WithObserver(func(e Event) {
		phases = append(phases, e.Phase)
	}))

	assert.Equal(t, []string{
		PhasePoints, PhaseGraph, PhaseDrainage,
		PhaseRivers, PhaseMoisture, PhaseBiomes, PhasePublish,
	}, phases)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig(1)
	cfg.Biome.Preset = "martian"
	_, err := New(cfg)
	assert.ErrorContains(t, err, "martian")

	cfg = testConfig(1)
	cfg.RegionCount = 0
	_, err = New(cfg)
	assert.ErrorContains(t, err, "regionCount")
}

func TestWithClassifierOverride(t *testing.T) {
	graph := generate(t, testConfig(6), WithClassifier(biome.NewWhittakerClassifier()))

	tagged := 0
	for _, r := range graph.Regions {
		require.NotEqual(t, biome.TagNone, r.Biome, "region %d left untagged", r.ID)
		if !r.IsOcean && !r.IsLake {
			tagged++
		}
	}
	assert.Positive(t, tagged, "expected land regions to classify")
}

func TestGenerateEveryTemplate(t *testing.T) {
	for _, name := range TemplateNames() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Template(name)
			require.NoError(t, err)
			cfg.Seed = 1
			// Shrink for test speed; the shape tuning still applies.
			cfg.RegionCount = 120

			graph := generate(t, cfg)
			assert.NotEmpty(t, graph.CoastlineEdges())
			assert.Positive(t, graph.LandRatio())
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	cfg := testConfig(42)
	cfg.RegionCount = 500
	cfg.Radius = 10000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := New(cfg)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}
