package gen

import "fmt"

// Templates are complete baseline configs callers override field by field.
// The seed is left at zero; callers always supply their own.
var templates = map[string]Config{
	"tropical_volcanic": {
		RegionCount:     500,
		Radius:          10000,
		LloydIterations: 2,
		Shape: ShapeConfig{
			InteriorBoost:  0.48,
			NoiseAmplitude: 0.30,
			NoiseFrequency: 0.0003,
			FalloffStart:   0.7,
			ShapeVariation: 0.3,
			Octaves:        5,
			Lacunarity:     2,
			Gain:           0.5,
		},
		Rivers: RiverConfig{
			Rainfall:     1,
			Threshold:    8,
			MinTributary: 2,
			Lakes: LakeConfig{
				MinLakeDepth:   0.015,
				MinLakeCorners: 4,
				MaxLakes:       3,
			},
		},
		Moisture: MoistureConfig{
			Decay:         0.85,
			UphillPenalty: 0.6,
			RiverMoisture: 0.8,
		},
		Biome: BiomeConfig{Preset: "tropical"},
	},
	"temperate_coastal": {
		RegionCount:     600,
		Radius:          12000,
		LloydIterations: 2,
		Shape: ShapeConfig{
			InteriorBoost:  0.42,
			NoiseAmplitude: 0.32,
			NoiseFrequency: 0.00025,
			FalloffStart:   0.65,
			ShapeVariation: 0.35,
			Octaves:        5,
			Lacunarity:     2,
			Gain:           0.5,
			WarpAmplitude:  600,
			WarpFrequency:  0.0001,
		},
		Rivers: RiverConfig{
			Rainfall:     1,
			Threshold:    9,
			MinTributary: 2.5,
			Lakes: LakeConfig{
				MinLakeDepth:   0.012,
				MinLakeCorners: 4,
				MaxLakes:       4,
			},
		},
		Moisture: MoistureConfig{
			Decay:         0.86,
			UphillPenalty: 0.65,
			RiverMoisture: 0.8,
		},
		Biome: BiomeConfig{Preset: "temperate"},
	},
	"arctic_shelf": {
		RegionCount:     450,
		Radius:          9000,
		LloydIterations: 2,
		Shape: ShapeConfig{
			InteriorBoost:  0.34,
			NoiseAmplitude: 0.26,
			NoiseFrequency: 0.00035,
			FalloffStart:   0.6,
			ShapeVariation: 0.5,
			Octaves:        4,
			Lacunarity:     2,
			Gain:           0.5,
			Ridged:         true,
		},
		Rivers: RiverConfig{
			Rainfall:     1,
			Threshold:    7,
			MinTributary: 2,
			Lakes: LakeConfig{
				MinLakeDepth:   0.01,
				MinLakeCorners: 3,
				MaxLakes:       5,
			},
		},
		Moisture: MoistureConfig{
			Decay:         0.8,
			UphillPenalty: 0.5,
			RiverMoisture: 0.7,
		},
		Biome: BiomeConfig{Preset: "arctic"},
	},
}

// Template returns a copy of a named baseline config. Unknown names are a
// caller error.
func Template(name string) (Config, error) {
	cfg, ok := templates[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown island template %q", name)
	}
	return cfg, nil
}

// TemplateNames lists the built-in template names in stable order.
func TemplateNames() []string {
	return []string{"arctic_shelf", "temperate_coastal", "tropical_volcanic"}
}
