package status

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for the status page markup.
const (
	componentSelector       = ".component"
	componentNameSelector   = ".name"
	componentStatusSelector = ".component-status"
	incidentSelector        = ".unresolved-incident"
	pageBannerSelector      = ".page-status"
)

// Extract turns a raw upstream payload into components and an incident
// summary, dispatching on the payload shape. Component order preserves
// document/array order.
func Extract(payload RawPayload) ([]Component, IncidentSummary, error) {
	switch payload.Kind {
	case PayloadStructured:
		return extractFeed(payload.Structured), feedIncidents(payload.Structured), nil
	case PayloadMarkup:
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(payload.Markup))
		if err != nil {
			return nil, IncidentSummary{}, fmt.Errorf("parse status page: %w", err)
		}
		return extractMarkup(doc), markupIncidents(doc), nil
	default:
		return nil, IncidentSummary{}, fmt.Errorf("unknown payload kind %d", payload.Kind)
	}
}

// extractFeed walks the feed's group/container nesting. The container
// status code is already a weight, so the weight table does not apply.
func extractFeed(feed *Feed) []Component {
	components := []Component{}
	for _, group := range feed.Groups {
		for _, c := range group.Containers {
			components = append(components, Component{
				Name:     c.Name,
				Category: group.Name,
				Status:   c.Status,
				Weight:   c.StatusCode,
			})
		}
	}
	return components
}

// extractMarkup selects every component element, reading and trimming
// its name and status sub-elements. Entries with either field empty
// after trimming are skipped.
func extractMarkup(doc *goquery.Document) []Component {
	components := []Component{}
	doc.Find(componentSelector).Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find(componentNameSelector).Text())
		label := strings.TrimSpace(sel.Find(componentStatusSelector).Text())
		if name == "" || label == "" {
			return
		}
		components = append(components, Component{
			Name:   name,
			Status: label,
			Weight: WeightFor(label),
		})
	})
	return components
}

func feedIncidents(feed *Feed) IncidentSummary {
	count := len(feed.Incidents)
	return newIncidentSummary(count > 0, count)
}

// markupIncidents counts unresolved incident markers and additionally
// treats an outage/disruption page banner as an active signal. A
// banner-only hit reports active with count 0.
func markupIncidents(doc *goquery.Document) IncidentSummary {
	count := doc.Find(incidentSelector).Length()
	banner := strings.ToLower(doc.Find(pageBannerSelector).Text())
	active := count > 0 ||
		strings.Contains(banner, "outage") ||
		strings.Contains(banner, "disruption")
	return newIncidentSummary(active, count)
}

func newIncidentSummary(active bool, count int) IncidentSummary {
	message := "No active incidents detected"
	if active {
		message = fmt.Sprintf("%d active incident(s) detected", count)
	}
	return IncidentSummary{Active: active, Count: count, Message: message}
}
