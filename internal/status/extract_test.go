package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robloxstatus/robloxstatus/internal/status"
)

const statusPageHTML = `<!DOCTYPE html>
<html>
<body>
	<div class="page-status"><span>All Systems Operational</span></div>
	<div class="component">
		<span class="name"> Website </span>
		<span class="component-status"> Operational </span>
	</div>
	<div class="component">
		<span class="name">Game Joins</span>
		<span class="component-status">Major Outage</span>
	</div>
	<div class="component">
		<span class="name"></span>
		<span class="component-status">Operational</span>
	</div>
	<div class="component">
		<span class="name">Avatars</span>
		<span class="component-status">  </span>
	</div>
</body>
</html>`

func TestExtract_Markup(t *testing.T) {
	payload := status.RawPayload{Kind: status.PayloadMarkup, Markup: statusPageHTML}

	components, incidents, err := status.Extract(payload)
	require.NoError(t, err)

	// Entries with an empty name or status are skipped; order follows
	// the document.
	require.Len(t, components, 2)
	assert.Equal(t, "Website", components[0].Name)
	assert.Equal(t, "Operational", components[0].Status)
	assert.Equal(t, 100, components[0].Weight)
	assert.Empty(t, components[0].Category)
	assert.Equal(t, "Game Joins", components[1].Name)
	assert.Equal(t, 20, components[1].Weight)

	assert.False(t, incidents.Active)
	assert.Equal(t, 0, incidents.Count)
	assert.Equal(t, "No active incidents detected", incidents.Message)
}

func TestExtract_Markup_UnknownLabel(t *testing.T) {
	html := `<div class="component">
		<span class="name">Website</span>
		<span class="component-status">Under Maintenance</span>
	</div>`

	components, _, err := status.Extract(status.RawPayload{Kind: status.PayloadMarkup, Markup: html})
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, 0, components[0].Weight)
}

func TestExtract_Markup_UnresolvedIncidents(t *testing.T) {
	html := `<div class="unresolved-incident">a</div>
		<div class="unresolved-incident">b</div>
		<div class="component"><span class="name">Website</span><span class="component-status">Operational</span></div>`

	_, incidents, err := status.Extract(status.RawPayload{Kind: status.PayloadMarkup, Markup: html})
	require.NoError(t, err)
	assert.True(t, incidents.Active)
	assert.Equal(t, 2, incidents.Count)
	assert.Equal(t, "2 active incident(s) detected", incidents.Message)
}

func TestExtract_Markup_BannerHeuristic(t *testing.T) {
	cases := []struct {
		name   string
		banner string
		active bool
	}{
		{"outage banner", "Partial OUTAGE in progress", true},
		{"disruption banner", "We are investigating a service Disruption", true},
		{"calm banner", "All Systems Operational", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			html := `<div class="page-status">` + tc.banner + `</div>`
			_, incidents, err := status.Extract(status.RawPayload{Kind: status.PayloadMarkup, Markup: html})
			require.NoError(t, err)
			assert.Equal(t, tc.active, incidents.Active)
			// The banner alone never contributes to the count.
			assert.Equal(t, 0, incidents.Count)
		})
	}
}

func TestExtract_Structured(t *testing.T) {
	feed := &status.Feed{
		Groups: []status.FeedGroup{
			{
				Name: "Platform",
				Containers: []status.FeedContainer{
					{Name: "Website", Status: "Operational", StatusCode: 100},
					{Name: "Game Joins", Status: "Partial Outage", StatusCode: 60},
				},
			},
			{
				Name: "Infrastructure",
				Containers: []status.FeedContainer{
					{Name: "CDN", Status: "Operational", StatusCode: 100},
				},
			},
		},
		Incidents: []status.FeedIncident{{Name: "Login errors"}},
	}

	components, incidents, err := status.Extract(status.RawPayload{Kind: status.PayloadStructured, Structured: feed})
	require.NoError(t, err)

	require.Len(t, components, 3)
	assert.Equal(t, "Website", components[0].Name)
	assert.Equal(t, "Platform", components[0].Category)
	assert.Equal(t, 100, components[0].Weight)
	// Weight comes from the feed's status code, not the label table.
	assert.Equal(t, 60, components[1].Weight)
	assert.Equal(t, "Infrastructure", components[2].Category)

	assert.True(t, incidents.Active)
	assert.Equal(t, 1, incidents.Count)
	assert.Equal(t, "1 active incident(s) detected", incidents.Message)
}

func TestExtract_Structured_NoComponents(t *testing.T) {
	components, incidents, err := status.Extract(status.RawPayload{
		Kind:       status.PayloadStructured,
		Structured: &status.Feed{},
	})
	require.NoError(t, err)
	assert.Empty(t, components)
	assert.NotNil(t, components)
	assert.False(t, incidents.Active)
}
