package biome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name      string
		preset    string
		expectErr bool
	}{
		{
			name:   "tropical preset resolves",
			preset: "tropical",
		},
		{
			name:   "temperate preset resolves",
			preset: "temperate",
		},
		{
			name:   "arctic preset resolves",
			preset: "arctic",
		},
		{
			name:      "unknown preset is an error",
			preset:    "mediterranean",
			expectErr: true,
		},
		{
			name:      "empty name is an error",
			preset:    "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ByName(tt.preset)
			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown biome preset")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.preset, p.Name)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	require.NotEmpty(t, names)

	for _, name := range names {
		p, err := ByName(name)
		require.NoError(t, err, "listed preset %q should resolve", name)
		assert.Equal(t, name, p.Name)
	}
}

func TestPresetClassify(t *testing.T) {
	tests := []struct {
		name      string
		preset    string
		elevation float64
		moisture  float64
		expected  Tag
	}{
		{
			name:      "deep water classifies as deep ocean",
			preset:    "tropical",
			elevation: -0.9,
			moisture:  1.0,
			expected:  TagDeepOcean,
		},
		{
			name:      "shallow water classifies as ocean",
			preset:    "tropical",
			elevation: -0.1,
			moisture:  1.0,
			expected:  TagOcean,
		},
		{
			name:      "zero elevation is still water",
			preset:    "tropical",
			elevation: 0.0,
			moisture:  1.0,
			expected:  TagOcean,
		},
		{
			name:      "shoreline classifies as beach",
			preset:    "tropical",
			elevation: 0.02,
			moisture:  0.5,
			expected:  TagBeach,
		},
		{
			name:      "dry tropical lowland is savanna",
			preset:    "tropical",
			elevation: 0.1,
			moisture:  0.1,
			expected:  TagSavanna,
		},
		{
			name:      "moderate tropical lowland is tropical forest",
			preset:    "tropical",
			elevation: 0.1,
			moisture:  0.5,
			expected:  TagTropicalForest,
		},
		{
			name:      "wet tropical lowland is rainforest",
			preset:    "tropical",
			elevation: 0.1,
			moisture:  0.9,
			expected:  TagRainforest,
		},
		{
			name:      "moisture on a band bound stays in the lower band",
			preset:    "tropical",
			elevation: 0.1,
			moisture:  0.33,
			expected:  TagSavanna,
		},
		{
			name:      "wet tropical peak is snow",
			preset:    "tropical",
			elevation: 0.95,
			moisture:  0.9,
			expected:  TagSnow,
		},
		{
			name:      "moderate temperate lowland is temperate forest",
			preset:    "temperate",
			elevation: 0.1,
			moisture:  0.45,
			expected:  TagTemperateForest,
		},
		{
			name:      "dry temperate lowland is grassland",
			preset:    "temperate",
			elevation: 0.1,
			moisture:  0.1,
			expected:  TagGrassland,
		},
		{
			name:      "arctic lowland is tundra",
			preset:    "arctic",
			elevation: 0.1,
			moisture:  0.3,
			expected:  TagTundra,
		},
		{
			name:      "wet arctic peak is ice",
			preset:    "arctic",
			elevation: 0.9,
			moisture:  0.9,
			expected:  TagIce,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ByName(tt.preset)
			require.NoError(t, err)

			got := p.Classify(tt.elevation, tt.moisture)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPresetValidate(t *testing.T) {
	base, err := ByName("temperate")
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(p *Preset)
		wantErr string
	}{
		{
			name:   "valid preset passes",
			mutate: func(p *Preset) {},
		},
		{
			name: "descending elevation bands rejected",
			mutate: func(p *Preset) {
				p.ElevationBands[3] = p.ElevationBands[2] - 0.1
			},
			wantErr: "elevation bands must ascend",
		},
		{
			name: "equal elevation bands rejected",
			mutate: func(p *Preset) {
				p.ElevationBands[4] = p.ElevationBands[3]
			},
			wantErr: "elevation bands must ascend",
		},
		{
			name: "descending moisture bands rejected",
			mutate: func(p *Preset) {
				p.MoistureBands[1] = p.MoistureBands[0] - 0.1
			},
			wantErr: "moisture bands must ascend",
		},
		{
			name: "empty table entry rejected",
			mutate: func(p *Preset) {
				p.Table[3][1] = ""
			},
			wantErr: "table entry [3][1] is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// stubClassifier returns a fixed tag regardless of input.
type stubClassifier struct {
	tag Tag
}

func (s stubClassifier) Classify(_, _ float64) Tag {
	return s.tag
}

func TestWhittakerWaterShortCircuit(t *testing.T) {
	w := NewWhittakerClassifier()

	tests := []struct {
		name      string
		elevation float64
		expected  Tag
	}{
		{
			name:      "deep water",
			elevation: -0.8,
			expected:  TagDeepOcean,
		},
		{
			name:      "floor bound is deep",
			elevation: deepOceanFloor,
			expected:  TagDeepOcean,
		},
		{
			name:      "shallow water",
			elevation: -0.2,
			expected:  TagOcean,
		},
		{
			name:      "zero elevation is water",
			elevation: 0.0,
			expected:  TagOcean,
		},
		{
			name:      "shoreline",
			elevation: 0.01,
			expected:  TagBeach,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, w.Classify(tt.elevation, 0.5))
		})
	}
}

func TestWhittakerLandTags(t *testing.T) {
	w := NewWhittakerClassifier()

	water := map[Tag]bool{
		TagNone:      true,
		TagDeepOcean: true,
		TagOcean:     true,
		TagLake:      true,
		TagBeach:     true,
	}

	elevations := []float64{0.05, 0.2, 0.4, 0.6, 0.8, 1.0}
	moistures := []float64{0.0, 0.25, 0.5, 0.75, 1.0}

	for _, elev := range elevations {
		for _, mois := range moistures {
			tag := w.Classify(elev, mois)
			assert.NotEmpty(t, tag, "elevation %.2f moisture %.2f", elev, mois)
			assert.False(t, water[tag],
				"land at elevation %.2f moisture %.2f should not map to %q", elev, mois, tag)
		}
	}
}

func TestWhittakerDeterministic(t *testing.T) {
	w := NewWhittakerClassifier()

	inputs := []struct{ elevation, moisture float64 }{
		{0.05, 0.0},
		{0.3, 0.4},
		{0.7, 0.9},
		{1.0, 1.0},
	}

	for _, in := range inputs {
		first := w.Classify(in.elevation, in.moisture)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, w.Classify(in.elevation, in.moisture))
		}
	}
}

func TestWhittakerFallback(t *testing.T) {
	w := NewWhittakerClassifier()
	w.Tags = map[int]Tag{} // force every code to miss
	w.Fallback = stubClassifier{tag: TagDesert}

	assert.Equal(t, TagDesert, w.Classify(0.5, 0.5))

	// Without an explicit fallback the temperate preset takes over and still
	// produces a land tag.
	w.Fallback = nil
	tag := w.Classify(0.5, 0.5)
	assert.NotEmpty(t, tag)
	assert.NotEqual(t, TagOcean, tag)
	assert.NotEqual(t, TagDeepOcean, tag)
}

func TestClassifierInterfaces(t *testing.T) {
	var _ Classifier = Preset{}
	var _ Classifier = (*WhittakerClassifier)(nil)

	p, err := ByName("tropical")
	require.NoError(t, err)

	var c Classifier = p
	assert.Equal(t, TagOcean, c.Classify(-0.1, 1.0))
}
