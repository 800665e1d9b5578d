package gen

import (
	"math"

	"github.com/glidecamp/islandgen/internal/geom"
)

// assignElevation samples the elevation channel at every corner, adds the
// radial island mask, then aggregates corners into region elevations.
// Boundary-ring regions are forced underwater whatever the noise says.
func (b *buildGraph) assignElevation() {
	amplitude := b.cfg.Shape.NoiseAmplitude
	for _, c := range b.corners {
		n := b.sampler.Elevation.Sample(c.pos.X, c.pos.Y)
		c.elevation = n*amplitude + b.islandMask(c.pos)
	}

	for _, r := range b.regions {
		if r.degenerate {
			continue
		}
		if r.boundary {
			r.elevation = oceanFloor
			r.ocean = true
			continue
		}
		r.elevation = aggregateElevation(b.corners, r.corners)
		r.ocean = r.elevation <= 0
	}
}

// aggregateElevation blends the mean with the max of the corner elevations.
// The max share keeps a single peak corner from being averaged away.
func aggregateElevation(corners []*buildCorner, ids []int) float64 {
	sum := 0.0
	max := math.Inf(-1)
	for _, id := range ids {
		e := corners[id].elevation
		sum += e
		if e > max {
			max = e
		}
	}
	mean := sum / float64(len(ids))
	return 0.6*mean + 0.4*max
}

// islandMask shapes the coastline. Distance is normalized by an effective
// radius that wobbles with the angular shape channel, so coasts are not
// circles. Inside FalloffStart the mask is a linear interior boost tapering
// to zero; from there it falls by smoothstep to -falloffDepth at the
// effective radius; outside it is the flat ocean floor.
func (b *buildGraph) islandMask(p geom.Vec2) float64 {
	shape := b.cfg.Shape
	off := p.Sub(b.cfg.Center)
	theta := math.Atan2(off.Y, off.X)

	wobble := b.sampler.Shape.Sample(math.Cos(theta), math.Sin(theta))
	effective := b.cfg.Radius * (1 + shape.ShapeVariation*wobble)
	dn := off.Len() / effective

	switch {
	case dn >= 1:
		return oceanFloor
	case dn <= shape.FalloffStart:
		return shape.InteriorBoost * (1 - dn/shape.FalloffStart)
	default:
		t := (dn - shape.FalloffStart) / (1 - shape.FalloffStart)
		return -falloffDepth * geom.Smoothstep(0, 1, t)
	}
}
