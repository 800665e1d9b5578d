package points

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glidecamp/islandgen/internal/geom"
)

func TestGenerateDeterminism(t *testing.T) {
	opts := Options{Count: 200, Radius: 1000, LloydIterations: 2}

	a, err := Generate(42, opts)
	require.NoError(t, err)
	b, err := Generate(42, opts)
	require.NoError(t, err)

	assert.Equal(t, a.Interior, b.Interior, "same seed must produce identical interior sites")
	assert.Equal(t, a.Boundary, b.Boundary)

	c, err := Generate(43, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.Interior, c.Interior, "different seeds must diverge")
}

func TestGenerateCountsAndContainment(t *testing.T) {
	tests := []struct {
		name  string
		count int
		lloyd int
	}{
		{"unrelaxed", 150, 0},
		{"one pass", 150, 1},
		{"three passes", 150, 3},
		{"tiny set", 2, 2},
		{"empty", 0, 1},
	}

	center := geom.Vec2{X: 500, Y: -250}
	const radius = 800.0

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Generate(7, Options{
				Count:           tt.count,
				Radius:          radius,
				Center:          center,
				LloydIterations: tt.lloyd,
			})
			require.NoError(t, err)

			assert.Len(t, s.Interior, tt.count)
			assert.Len(t, s.Boundary, BoundaryCount(tt.count))

			for _, p := range s.Interior {
				assert.LessOrEqual(t, p.Dist(center), radius+1e-9, "interior point escaped the disk")
			}
			for _, p := range s.Boundary {
				assert.InDelta(t, radius, p.Dist(center), 1e-6, "boundary point off the circumference")
			}
		})
	}
}

func TestGenerateInvalidOptions(t *testing.T) {
	_, err := Generate(1, Options{Count: -1, Radius: 10})
	assert.Error(t, err)

	_, err = Generate(1, Options{Count: 10, Radius: 0})
	assert.Error(t, err)
}

func TestLloydImprovesSpacing(t *testing.T) {
	raw, err := Generate(11, Options{Count: 250, Radius: 1000, LloydIterations: 0})
	require.NoError(t, err)
	relaxed, err := Generate(11, Options{Count: 250, Radius: 1000, LloydIterations: 3})
	require.NoError(t, err)

	assert.NotEqual(t, raw.Interior, relaxed.Interior, "relaxation should move points")
	assert.Greater(t, minSpacing(relaxed.Interior), minSpacing(raw.Interior),
		"relaxation should push the closest pair apart")
}

func minSpacing(pts []geom.Vec2) float64 {
	best := math.Inf(1)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].Dist(pts[j]); d < best {
				best = d
			}
		}
	}
	return best
}

func TestBoundaryCount(t *testing.T) {
	assert.Equal(t, 16, BoundaryCount(0))
	assert.Equal(t, 16, BoundaryCount(10))

	// Grows with the square root of the interior count.
	assert.Equal(t, int(math.Ceil(2*math.Sqrt(math.Pi*500))), BoundaryCount(500))
	assert.Greater(t, BoundaryCount(2000), BoundaryCount(500))
}

func TestRingSpacing(t *testing.T) {
	center := geom.Vec2{X: 3, Y: 4}
	ring := Ring(center, 10, 8)
	require.Len(t, ring, 8)

	for i, p := range ring {
		assert.InDelta(t, 10.0, p.Dist(center), 1e-9)
		next := ring[(i+1)%len(ring)]
		// Even angular spacing means even chord lengths.
		assert.InDelta(t, 2*10*math.Sin(math.Pi/8), p.Dist(next), 1e-9)
	}
}
