// Package noise provides the seeded fractal noise channels used by the
// island generator. Every channel is an owned object constructed from an
// explicit seed; there is no package-level generator state, so concurrent
// generations with different seeds never interfere.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	perlinAlpha      = 2.0
	perlinBeta       = 2.0
	perlinIterations = 3

	// Seed offsets keep the derived sources decorrelated from the base
	// channel while staying a pure function of the caller's seed.
	warpSeedOffsetX = 1
	warpSeedOffsetY = 2
	shapeSeedOffset = 1013
)

// Params tunes one fractal channel.
type Params struct {
	Octaves    int
	Lacunarity float64
	Gain       float64
	Frequency  float64
	Ridged     bool

	// WarpAmplitude > 0 enables domain warping: sample coordinates are
	// displaced by a secondary noise field before the fractal sum.
	WarpAmplitude float64
	WarpFrequency float64
}

// source is a raw 2D noise field returning values in roughly [-1, 1].
type source interface {
	at(x, y float64) float64
}

type perlinSource struct {
	p *perlin.Perlin
}

func newPerlinSource(seed int64) perlinSource {
	return perlinSource{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinIterations, seed)}
}

func (s perlinSource) at(x, y float64) float64 { return s.p.Noise2D(x, y) }

type simplexSource struct {
	n opensimplex.Noise
}

func newSimplexSource(seed int64) simplexSource {
	return simplexSource{n: opensimplex.New(seed)}
}

func (s simplexSource) at(x, y float64) float64 { return s.n.Eval2(x, y) }

// Channel is a fractal (FBm) sum over a base noise source. Sampling is a
// pure function of the input coordinates, reproducible across calls.
type Channel struct {
	base       source
	warpX      source
	warpY      source
	octaves    int
	lacunarity float64
	gain       float64
	frequency  float64
	ridged     bool
	warpAmp    float64
	warpFreq   float64
}

// NewPerlinChannel builds a fractal channel over a seeded perlin source.
func NewPerlinChannel(seed int64, p Params) *Channel {
	c := newChannel(p)
	c.base = newPerlinSource(seed)
	if c.warpAmp > 0 {
		c.warpX = newPerlinSource(seed + warpSeedOffsetX)
		c.warpY = newPerlinSource(seed + warpSeedOffsetY)
	}
	return c
}

// NewSimplexChannel builds a fractal channel over a seeded opensimplex
// source.
func NewSimplexChannel(seed int64, p Params) *Channel {
	c := newChannel(p)
	c.base = newSimplexSource(seed)
	if c.warpAmp > 0 {
		c.warpX = newSimplexSource(seed + warpSeedOffsetX)
		c.warpY = newSimplexSource(seed + warpSeedOffsetY)
	}
	return c
}

func newChannel(p Params) *Channel {
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Lacunarity == 0 {
		p.Lacunarity = 2
	}
	if p.Gain == 0 {
		p.Gain = 0.5
	}
	if p.Frequency == 0 {
		p.Frequency = 1
	}
	return &Channel{
		octaves:    p.Octaves,
		lacunarity: p.Lacunarity,
		gain:       p.Gain,
		frequency:  p.Frequency,
		ridged:     p.Ridged,
		warpAmp:    p.WarpAmplitude,
		warpFreq:   p.WarpFrequency,
	}
}

// Sample returns the fractal value at (x, y), normalized into roughly
// [-1, 1] by the accumulated octave amplitudes.
func (c *Channel) Sample(x, y float64) float64 {
	if c.warpAmp > 0 {
		wx := c.warpX.at(x*c.warpFreq, y*c.warpFreq)
		wy := c.warpY.at(x*c.warpFreq, y*c.warpFreq)
		x += wx * c.warpAmp
		y += wy * c.warpAmp
	}

	var sum, norm float64
	amplitude := 1.0
	frequency := c.frequency
	for i := 0; i < c.octaves; i++ {
		v := c.base.at(x*frequency, y*frequency)
		if c.ridged {
			v = 1 - math.Abs(v)
			v = v*2 - 1
		}
		sum += v * amplitude
		norm += amplitude
		amplitude *= c.gain
		frequency *= c.lacunarity
	}
	return sum / norm
}

// Sampler bundles the two independent channels the pipeline needs: the
// elevation field sampled at world coordinates and the coastline shape
// field sampled on near-unit-circle coordinates.
type Sampler struct {
	Elevation *Channel
	Shape     *Channel
}

// NewSampler derives both channels from a single seed. The shape channel is
// keyed off seed+shapeSeedOffset so the two fields stay independent.
func NewSampler(seed int64, elevation, shape Params) *Sampler {
	return &Sampler{
		Elevation: NewPerlinChannel(seed, elevation),
		Shape:     NewSimplexChannel(seed+shapeSeedOffset, shape),
	}
}
