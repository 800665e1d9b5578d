package biome

import "fmt"

// Elevation bands, in ascending threshold order. Elevation above the last
// threshold classifies as peak.
const (
	bandDeepOcean = iota
	bandOcean
	bandBeach
	bandLow
	bandMid
	bandHigh
	bandPeak

	elevationBands = bandPeak // threshold count, one less than band count
)

// Moisture bands: below the first threshold is dry, below the second is
// moderate, everything above is wet.
const (
	bandDry = iota
	bandModerate
	bandWet

	moistureBands = bandWet
)

// Preset is a self-contained classification scheme: ascending elevation and
// moisture thresholds plus the band lookup table. Bounds are inclusive upper
// bounds, so the ocean band ending at 0 captures everything the generator
// treats as water. The zero value is not usable; start from a named preset
// or fill every field.
type Preset struct {
	Name string `json:"name"`
	// ElevationBands holds the upper bounds of the deepOcean, ocean, beach,
	// low, mid and high bands.
	ElevationBands [elevationBands]float64 `json:"elevationBands"`
	// MoistureBands holds the upper bounds of the dry and moderate bands.
	MoistureBands [moistureBands]float64 `json:"moistureBands"`
	// Table maps [elevation band][moisture band] to a tag.
	Table [elevationBands + 1][moistureBands + 1]Tag `json:"table"`
}

// Classify finds the elevation and moisture bands by linear threshold scan
// and returns the table entry.
func (p Preset) Classify(elevation, moisture float64) Tag {
	row := bandPeak
	for i, bound := range p.ElevationBands {
		if elevation <= bound {
			row = i
			break
		}
	}
	col := bandWet
	for i, bound := range p.MoistureBands {
		if moisture <= bound {
			col = i
			break
		}
	}
	return p.Table[row][col]
}

// Validate checks that the thresholds ascend and the table is fully
// populated.
func (p Preset) Validate() error {
	for i := 1; i < len(p.ElevationBands); i++ {
		if p.ElevationBands[i] <= p.ElevationBands[i-1] {
			return fmt.Errorf("elevation bands must ascend: band %d (%f) <= band %d (%f)",
				i, p.ElevationBands[i], i-1, p.ElevationBands[i-1])
		}
	}
	for i := 1; i < len(p.MoistureBands); i++ {
		if p.MoistureBands[i] <= p.MoistureBands[i-1] {
			return fmt.Errorf("moisture bands must ascend: band %d (%f) <= band %d (%f)",
				i, p.MoistureBands[i], i-1, p.MoistureBands[i-1])
		}
	}
	for r, row := range p.Table {
		for c, tag := range row {
			if tag == "" {
				return fmt.Errorf("table entry [%d][%d] is empty", r, c)
			}
		}
	}
	return nil
}

var presets = map[string]Preset{
	"tropical": {
		Name:           "tropical",
		ElevationBands: [elevationBands]float64{-0.55, 0, 0.04, 0.3, 0.6, 0.85},
		MoistureBands:  [moistureBands]float64{0.33, 0.66},
		Table: [elevationBands + 1][moistureBands + 1]Tag{
			bandDeepOcean: {TagDeepOcean, TagDeepOcean, TagDeepOcean},
			bandOcean:     {TagOcean, TagOcean, TagOcean},
			bandBeach:     {TagBeach, TagBeach, TagBeach},
			bandLow:       {TagSavanna, TagTropicalForest, TagRainforest},
			bandMid:       {TagGrassland, TagTropicalForest, TagRainforest},
			bandHigh:      {TagShrubland, TagShrubland, TagTropicalForest},
			bandPeak:      {TagScorched, TagBare, TagSnow},
		},
	},
	"temperate": {
		Name:           "temperate",
		ElevationBands: [elevationBands]float64{-0.5, 0, 0.03, 0.28, 0.55, 0.8},
		MoistureBands:  [moistureBands]float64{0.3, 0.6},
		Table: [elevationBands + 1][moistureBands + 1]Tag{
			bandDeepOcean: {TagDeepOcean, TagDeepOcean, TagDeepOcean},
			bandOcean:     {TagOcean, TagOcean, TagOcean},
			bandBeach:     {TagBeach, TagBeach, TagBeach},
			bandLow:       {TagGrassland, TagTemperateForest, TagRainforest},
			bandMid:       {TagShrubland, TagTemperateForest, TagTemperateForest},
			bandHigh:      {TagBare, TagShrubland, TagTaiga},
			bandPeak:      {TagScorched, TagBare, TagSnow},
		},
	},
	"arctic": {
		Name:           "arctic",
		ElevationBands: [elevationBands]float64{-0.5, 0, 0.02, 0.25, 0.5, 0.75},
		MoistureBands:  [moistureBands]float64{0.25, 0.5},
		Table: [elevationBands + 1][moistureBands + 1]Tag{
			bandDeepOcean: {TagDeepOcean, TagDeepOcean, TagDeepOcean},
			bandOcean:     {TagOcean, TagOcean, TagOcean},
			bandBeach:     {TagBeach, TagBeach, TagBeach},
			bandLow:       {TagTundra, TagTundra, TagTaiga},
			bandMid:       {TagBare, TagTundra, TagTaiga},
			bandHigh:      {TagBare, TagSnow, TagSnow},
			bandPeak:      {TagSnow, TagSnow, TagIce},
		},
	},
}

// ByName resolves a named preset. Unknown names are a caller error, never a
// silent fallback.
func ByName(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown biome preset %q", name)
	}
	return p, nil
}

// PresetNames lists the built-in preset names in stable order.
func PresetNames() []string {
	return []string{"arctic", "temperate", "tropical"}
}
