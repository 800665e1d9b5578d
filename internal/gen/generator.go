package gen

import (
	"fmt"
	"time"

	"github.com/glidecamp/islandgen/internal/biome"
	"github.com/glidecamp/islandgen/internal/island"
	"github.com/glidecamp/islandgen/internal/noise"
	"github.com/glidecamp/islandgen/internal/points"
)

// Generator runs the pipeline for one config. Every Generate call builds
// fresh points, noise channels and graph state, so a Generator is safe to
// reuse and separate Generators never share anything.
type Generator struct {
	cfg        Config
	classifier biome.Classifier
	observer   Observer
}

// Option customizes a Generator.
type Option func(*Generator)

// WithObserver registers a callback invoked after each pipeline phase.
func WithObserver(o Observer) Option {
	return func(g *Generator) { g.observer = o }
}

// WithClassifier overrides the biome scheme resolved from the config.
func WithClassifier(c biome.Classifier) Option {
	return func(g *Generator) { g.classifier = c }
}

// New validates the config and resolves the biome classifier. Configuration
// problems, including unknown preset names, fail here rather than mid
// generation.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.classifier == nil {
		classifier, err := cfg.Biome.Classifier()
		if err != nil {
			return nil, err
		}
		g.classifier = classifier
	}
	return g, nil
}

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate runs the full pipeline and returns the published graph. The call
// blocks until the island is complete; identical configs yield identical
// graphs.
func (g *Generator) Generate() (*island.Graph, error) {
	cfg := g.cfg

	start := time.Now()
	pts, err := points.Generate(cfg.Seed, points.Options{
		Count:           cfg.RegionCount,
		Radius:          cfg.Radius,
		Center:          cfg.Center,
		LloydIterations: cfg.LloydIterations,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place points: %w", err)
	}
	g.emit(Event{
		Phase:    PhasePoints,
		Duration: time.Since(start),
		Sites:    len(pts.Interior) + len(pts.Boundary),
	})

	start = time.Now()
	sampler := noise.NewSampler(cfg.Seed, noise.Params{
		Octaves:       cfg.Shape.Octaves,
		Lacunarity:    cfg.Shape.Lacunarity,
		Gain:          cfg.Shape.Gain,
		Frequency:     cfg.Shape.NoiseFrequency,
		Ridged:        cfg.Shape.Ridged,
		WarpAmplitude: cfg.Shape.WarpAmplitude,
		WarpFrequency: cfg.Shape.WarpFrequency,
	}, shapeParams)

	b, err := newBuildGraph(&cfg, pts, sampler)
	if err != nil {
		return nil, err
	}
	b.assignElevation()
	b.markCoastlines()
	g.emit(Event{
		Phase:    PhaseGraph,
		Duration: time.Since(start),
		Regions:  len(b.regions),
		Edges:    len(b.edges),
		Corners:  len(b.corners),
	})

	start = time.Now()
	lakes := b.fillSinks()
	b.reclassifyLakeRegions()
	lakes += b.reclassifyInlandSeas()
	b.markCoastlines()
	g.emit(Event{Phase: PhaseDrainage, Duration: time.Since(start), Lakes: lakes})

	start = time.Now()
	b.assignDownslopes()
	b.accumulateFlow()
	riverEdges := b.markRivers()
	g.emit(Event{Phase: PhaseRivers, Duration: time.Since(start), RiverEdges: riverEdges})

	start = time.Now()
	b.propagateMoisture()
	g.emit(Event{Phase: PhaseMoisture, Duration: time.Since(start), Regions: len(b.regions)})

	start = time.Now()
	b.classifyBiomes(g.classifier)
	g.emit(Event{Phase: PhaseBiomes, Duration: time.Since(start), Regions: len(b.regions)})

	start = time.Now()
	out := b.publish()
	g.emit(Event{
		Phase:      PhasePublish,
		Duration:   time.Since(start),
		Regions:    len(out.Regions),
		Edges:      len(out.Edges),
		Corners:    len(out.Corners),
		Lakes:      lakes,
		RiverEdges: riverEdges,
	})
	return out, nil
}

func (g *Generator) emit(e Event) {
	if g.observer != nil {
		g.observer(e)
	}
}
