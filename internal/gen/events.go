package gen

import "time"

// Pipeline phase names reported to observers.
const (
	PhasePoints   = "points"
	PhaseGraph    = "graph"
	PhaseDrainage = "drainage"
	PhaseRivers   = "rivers"
	PhaseMoisture = "moisture"
	PhaseBiomes   = "biomes"
	PhasePublish  = "publish"
)

// Event describes one completed pipeline phase. Count fields are zero when
// they do not apply to the phase.
type Event struct {
	Phase      string
	Duration   time.Duration
	Sites      int
	Regions    int
	Edges      int
	Corners    int
	Lakes      int
	RiverEdges int
}

// Observer receives an Event after each pipeline phase. The callback runs
// synchronously on the generating goroutine and must not mutate anything it
// is handed.
type Observer func(Event)
