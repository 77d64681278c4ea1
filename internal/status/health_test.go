package status_test

import (
	"testing"

	"github.com/robloxstatus/robloxstatus/internal/status"
)

func TestWeightFor(t *testing.T) {
	cases := []struct {
		label  string
		weight int
	}{
		{"Operational", 100},
		{"Degraded Performance", 90},
		{"Degraded", 90},
		{"Partial Outage", 60},
		{"Major Outage", 20},
		{"operational", 0}, // case sensitive
		{"Something Else", 0},
		{"", 0},
	}

	for _, tc := range cases {
		if got := status.WeightFor(tc.label); got != tc.weight {
			t.Errorf("WeightFor(%q) = %d, want %d", tc.label, got, tc.weight)
		}
	}
}

func TestCalculateHealth_Empty(t *testing.T) {
	health := status.CalculateHealth(nil)
	if health.Percent != 100 {
		t.Errorf("expected percent 100 for empty list, got %d", health.Percent)
	}
	if health.State != status.StateOperational {
		t.Errorf("expected operational for empty list, got %s", health.State)
	}
	if health.Emoji != "🟢" {
		t.Errorf("unexpected emoji %q", health.Emoji)
	}
}

func TestCalculateHealth_Mean(t *testing.T) {
	// Operational + Major Outage averages to 60, inside the clamp.
	components := []status.Component{
		{Name: "Website", Status: "Operational", Weight: 100},
		{Name: "Avatars", Status: "Major Outage", Weight: 20},
	}

	health := status.CalculateHealth(components)
	if health.Percent != 60 {
		t.Errorf("expected percent 60, got %d", health.Percent)
	}
	if health.State != status.StatePartial {
		t.Errorf("expected partial, got %s", health.State)
	}
	if health.Emoji != "🟠" {
		t.Errorf("unexpected emoji %q", health.Emoji)
	}
}

func TestCalculateHealth_Floor(t *testing.T) {
	// Unknown labels score zero; the floor keeps the percent at 20.
	components := []status.Component{
		{Name: "Website", Status: "Exploded", Weight: 0},
		{Name: "Avatars", Status: "On Fire", Weight: 0},
	}

	health := status.CalculateHealth(components)
	if health.Percent != 20 {
		t.Errorf("expected floored percent 20, got %d", health.Percent)
	}
	if health.State != status.StateOutage {
		t.Errorf("expected outage, got %s", health.State)
	}
}

func TestCalculateHealth_StateBoundaries(t *testing.T) {
	cases := []struct {
		weights []int
		percent int
		state   status.State
	}{
		{[]int{95}, 95, status.StateOperational},
		{[]int{94}, 94, status.StateDegraded},
		{[]int{80}, 80, status.StateDegraded},
		{[]int{79}, 79, status.StatePartial},
		{[]int{40}, 40, status.StatePartial},
		{[]int{39}, 39, status.StateOutage},
		{[]int{99}, 99, status.StateOperational},
		{[]int{100, 100, 100}, 100, status.StateOperational},
	}

	for _, tc := range cases {
		components := make([]status.Component, len(tc.weights))
		for i, w := range tc.weights {
			components[i] = status.Component{Name: "svc", Status: "x", Weight: w}
		}

		health := status.CalculateHealth(components)
		if health.Percent != tc.percent {
			t.Errorf("weights %v: expected percent %d, got %d", tc.weights, tc.percent, health.Percent)
		}
		if health.State != tc.state {
			t.Errorf("weights %v: expected state %s, got %s", tc.weights, tc.state, health.State)
		}
	}
}

func TestDetermineStatus(t *testing.T) {
	cases := []struct {
		name      string
		percent   int
		incidents status.IncidentSummary
		state     status.State
		text      string
	}{
		{"healthy", 100, status.IncidentSummary{}, status.StateOperational, "All Systems Operational"},
		{"boundary operational", 95, status.IncidentSummary{}, status.StateOperational, "All Systems Operational"},
		{"minor issues", 94, status.IncidentSummary{}, status.StateDegraded, "Minor Issues"},
		{"boundary degraded", 80, status.IncidentSummary{}, status.StateDegraded, "Minor Issues"},
		{"low health", 79, status.IncidentSummary{}, status.StatePartial, "Service Disruption"},
		{"incident overrides healthy score", 100, status.IncidentSummary{Active: true, Count: 1}, status.StatePartial, "Service Disruption"},
		{"banner-only incident", 100, status.IncidentSummary{Active: true, Count: 0}, status.StatePartial, "Service Disruption"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			health := status.HealthSummary{Percent: tc.percent}
			got := status.DetermineStatus(health, tc.incidents)
			if got.State != tc.state {
				t.Errorf("expected state %s, got %s", tc.state, got.State)
			}
			if got.Text != tc.text {
				t.Errorf("expected text %q, got %q", tc.text, got.Text)
			}
		})
	}
}
