package status

// PayloadKind tags the two upstream payload shapes.
type PayloadKind int

const (
	// PayloadMarkup is the scraped status page HTML.
	PayloadMarkup PayloadKind = iota

	// PayloadStructured is the Status.io JSON feed.
	PayloadStructured
)

// RawPayload carries one upstream response, tagged by shape. Exactly
// one of Markup or Structured is populated, matching Kind.
type RawPayload struct {
	Kind       PayloadKind
	Markup     string
	Structured *Feed
}

// Feed mirrors the parts of the Status.io summary document the
// pipeline reads.
type Feed struct {
	Overall   FeedOverall    `json:"status_overall"`
	Groups    []FeedGroup    `json:"status"`
	Incidents []FeedIncident `json:"incidents"`
}

// FeedOverall is the feed's own overall classification.
type FeedOverall struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Updated    string `json:"updated"`
}

// FeedGroup is one component group with its containers.
type FeedGroup struct {
	Name       string          `json:"name"`
	Containers []FeedContainer `json:"containers"`
}

// FeedContainer is one monitored component. StatusCode is already a
// 0-100 health weight, so the weight table is bypassed in structured
// mode.
type FeedContainer struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Updated    string `json:"updated"`
}

// FeedIncident is one declared incident. Only its presence matters.
type FeedIncident struct {
	Name string `json:"name"`
}
