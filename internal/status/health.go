package status

import "math"

// statusWeights maps upstream status labels to health weights. Matching
// is exact and case sensitive.
var statusWeights = map[string]int{
	"Operational":          100,
	"Degraded Performance": 90,
	"Degraded":             90,
	"Partial Outage":       60,
	"Major Outage":         20,
}

const (
	// fallbackWeight scores labels missing from statusWeights. Past
	// iterations of this service used both 0 and 50; 0 is canonical
	// here so an unknown label never inflates the average.
	fallbackWeight = 0

	// healthFloor is the lowest percent CalculateHealth reports.
	healthFloor = 20
)

// WeightFor returns the health weight for an upstream status label.
func WeightFor(label string) int {
	if w, ok := statusWeights[label]; ok {
		return w
	}
	return fallbackWeight
}

// CalculateHealth reduces components to an aggregate health summary:
// the rounded mean of weights, clamped to [healthFloor, 100]. An empty
// component list reads as fully operational.
func CalculateHealth(components []Component) HealthSummary {
	if len(components) == 0 {
		return newHealthSummary(100)
	}

	total := 0
	for _, c := range components {
		total += c.Weight
	}

	percent := int(math.Round(float64(total) / float64(len(components))))
	if percent < healthFloor {
		percent = healthFloor
	}
	if percent > 100 {
		percent = 100
	}

	return newHealthSummary(percent)
}

func newHealthSummary(percent int) HealthSummary {
	state := healthState(percent)
	return HealthSummary{
		Percent: percent,
		Emoji:   stateEmoji(state),
		State:   state,
	}
}

// healthState buckets a percent into the four-state health grading,
// highest threshold first.
func healthState(percent int) State {
	switch {
	case percent >= 95:
		return StateOperational
	case percent >= 80:
		return StateDegraded
	case percent >= 40:
		return StatePartial
	default:
		return StateOutage
	}
}

// stateEmoji is the display glyph tied 1:1 to a state.
func stateEmoji(state State) string {
	switch state {
	case StateOperational:
		return "🟢"
	case StateDegraded:
		return "🟡"
	case StatePartial:
		return "🟠"
	default:
		return "🔴"
	}
}

// DetermineStatus folds health and incident signals into the top-line
// classification. An active incident forces at least a partial
// disruption regardless of the numeric average. This mapping uses
// three of the four states on purpose; the health block keeps the
// finer grading.
func DetermineStatus(health HealthSummary, incidents IncidentSummary) StatusSummary {
	if incidents.Active || health.Percent < 80 {
		return StatusSummary{Text: "Service Disruption", Emoji: "🟠", State: StatePartial}
	}
	if health.Percent < 95 {
		return StatusSummary{Text: "Minor Issues", Emoji: "🟡", State: StateDegraded}
	}
	return StatusSummary{Text: "All Systems Operational", Emoji: "🟢", State: StateOperational}
}
