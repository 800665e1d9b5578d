package biome

import (
	"github.com/Flokey82/genbiome"
)

// Water and shoreline cutoffs shared with the preset tables. The Whittaker
// diagram only covers land climates, so anything at or below these
// thresholds is classified before the table is consulted.
const (
	deepOceanFloor = -0.5
	beachCeiling   = 0.03
)

// Defaults for converting normalized elevation and moisture into the
// physical axes genbiome expects.
const (
	defaultSeaLevelTemp = 27.0 // degrees Celsius at elevation zero
	defaultTempLapse    = 32.0 // degrees lost from sea level to peak
	defaultMaxPrecip    = 45.0 // annual precipitation in dm at moisture 1.0
)

// whittakerTags translates genbiome's modified Whittaker biome codes to
// local tags. The upstream table is finer grained than ours, so several
// codes collapse into one tag. Codes missing here use the fallback
// classifier instead.
var whittakerTags = map[int]Tag{
	0: TagSnow, 1: TagTundra, 2: TagTaiga,
	3: TagTemperateForest, 4: TagRainforest, 5: TagRainforest,
	6: TagTropicalForest, 7: TagDesert, 8: TagGrassland,
	9: TagShrubland, 10: TagTaiga, 11: TagTropicalForest,
	12: TagSavanna, 13: TagDesert, 14: TagBare,
	15: TagScorched, 16: TagIce, 17: TagSavanna,
}

// WhittakerClassifier classifies land through genbiome's modified Whittaker
// diagram. Elevation stands in for mean annual temperature and moisture for
// annual precipitation.
type WhittakerClassifier struct {
	// SeaLevelTemp is the average annual temperature at elevation zero in
	// degrees Celsius.
	SeaLevelTemp float64
	// TempLapse is the temperature lost between sea level and peak
	// elevation in degrees Celsius.
	TempLapse float64
	// MaxPrecip is the annual precipitation at moisture 1.0 in dm.
	MaxPrecip float64
	// Tags overrides the default code translation table when non-nil.
	Tags map[int]Tag
	// Fallback classifies codes absent from the translation table. Nil
	// falls back to the temperate preset.
	Fallback Classifier
}

// NewWhittakerClassifier returns a classifier with the default conversion
// factors.
func NewWhittakerClassifier() *WhittakerClassifier {
	return &WhittakerClassifier{
		SeaLevelTemp: defaultSeaLevelTemp,
		TempLapse:    defaultTempLapse,
		MaxPrecip:    defaultMaxPrecip,
	}
}

// Classify implements Classifier.
func (w *WhittakerClassifier) Classify(elevation, moisture float64) Tag {
	switch {
	case elevation <= deepOceanFloor:
		return TagDeepOcean
	case elevation <= 0:
		return TagOcean
	case elevation <= beachCeiling:
		return TagBeach
	}

	temp := w.SeaLevelTemp - w.TempLapse*clamp01(elevation)
	precip := clamp01(moisture) * w.MaxPrecip
	code := genbiome.GetWhittakerModBiome(int(temp), int(precip))

	tags := w.Tags
	if tags == nil {
		tags = whittakerTags
	}
	if tag, ok := tags[code]; ok {
		return tag
	}
	if w.Fallback != nil {
		return w.Fallback.Classify(elevation, moisture)
	}
	return presets["temperate"].Classify(elevation, moisture)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
