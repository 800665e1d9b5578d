// Package biome classifies regions into biome tags from their elevation and
// moisture. A named preset defines the band thresholds and the lookup table;
// classification itself is a pure function.
package biome

// Tag identifies a biome on a region.
type Tag string

const (
	TagNone      Tag = "none"
	TagDeepOcean Tag = "deep_ocean"
	TagOcean     Tag = "ocean"
	TagLake      Tag = "lake"
	TagBeach     Tag = "beach"

	TagDesert          Tag = "desert"
	TagSavanna         Tag = "savanna"
	TagGrassland       Tag = "grassland"
	TagShrubland       Tag = "shrubland"
	TagTropicalForest  Tag = "tropical_forest"
	TagTemperateForest Tag = "temperate_forest"
	TagRainforest      Tag = "rainforest"
	TagTaiga           Tag = "taiga"
	TagTundra          Tag = "tundra"
	TagBare            Tag = "bare"
	TagScorched        Tag = "scorched"
	TagSnow            Tag = "snow"
	TagIce             Tag = "ice"
)

// Classifier maps an (elevation, moisture) pair to a biome tag. Lake
// regions never reach a classifier; they are tagged TagLake directly.
type Classifier interface {
	Classify(elevation, moisture float64) Tag
}
