package search

import (
	"sort"
	"time"

	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
	"github.com/quorumhq/minutesearch/internal/domain/search/result"
)

// Date bucket keys, newest first.
const (
	bucketUpcoming  = "upcoming"
	bucketToday     = "today"
	bucketThisWeek  = "this_week"
	bucketThisMonth = "this_month"
	bucketOlder     = "older"
)

var dateBucketLabels = map[string]string{
	bucketUpcoming:  "Upcoming",
	bucketToday:     "Today",
	bucketThisWeek:  "This week",
	bucketThisMonth: "This month",
	bucketOlder:     "Older",
}

// FacetOptions configures facet aggregation.
type FacetOptions struct {
	ByType        bool
	ByParticipant bool
	ByDateRange   bool

	// TypeLabels maps kinds to display labels; missing kinds fall back to
	// the raw kind string.
	TypeLabels map[kind.Kind]string

	// MaxValues caps the participant bucket list (0 = unlimited).
	MaxValues int

	// Now is the reference instant for date buckets, supplied by the
	// caller so aggregation stays pure.
	Now time.Time
}

// facetize tallies the deduplicated result set along the requested
// dimensions. Buckets with zero results are omitted. Pure function of its
// inputs; never re-runs scoring. Returns nil when no dimension is requested.
func facetize(items []result.Item, opts FacetOptions) *result.Facets {
	if !opts.ByType && !opts.ByParticipant && !opts.ByDateRange {
		return nil
	}

	facets := &result.Facets{}
	if opts.ByType {
		facets.ByType = facetByType(items, opts.TypeLabels)
	}
	if opts.ByParticipant {
		facets.ByParticipant = facetByParticipant(items, opts.MaxValues)
	}
	if opts.ByDateRange {
		facets.ByDateRange = facetByDateRange(items, opts.Now)
	}
	return facets
}

func facetByType(items []result.Item, labels map[kind.Kind]string) []result.FacetCount {
	counts := make(map[kind.Kind]int)
	for _, item := range items {
		counts[item.Kind()]++
	}

	out := make([]result.FacetCount, 0, len(counts))
	for _, k := range kind.All() {
		if counts[k] == 0 {
			continue
		}
		label, ok := labels[k]
		if !ok {
			label = string(k)
		}
		out = append(out, result.FacetCount{Value: string(k), Count: counts[k], Label: label})
	}
	return out
}

func facetByParticipant(items []result.Item, maxValues int) []result.FacetCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, name := range participantNames(item) {
			if name != "" {
				counts[name]++
			}
		}
	}

	out := make([]result.FacetCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, result.FacetCount{Value: name, Count: n, Label: name})
	}
	// Highest counts first, then alphabetical so equal counts are stable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if maxValues > 0 && len(out) > maxValues {
		out = out[:maxValues]
	}
	return out
}

// participantNames extracts the people associated with an item.
func participantNames(item result.Item) []string {
	switch it := item.(type) {
	case *result.Meeting:
		names := make([]string, 0, len(it.Participants())+1)
		names = append(names, it.Participants()...)
		if it.Host() != "" {
			names = append(names, it.Host())
		}
		return names
	case *result.Minutes:
		return nil
	case *result.Transcript:
		return []string{it.Speaker()}
	case *result.ActionItem:
		return []string{it.Assignee()}
	default:
		return nil
	}
}

func facetByDateRange(items []result.Item, now time.Time) []result.FacetCount {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	counts := make(map[string]int)

	for _, item := range items {
		t := item.OccurredAt()
		if t.IsZero() {
			continue
		}
		counts[dateBucket(t, dayStart)]++
	}

	order := []string{bucketUpcoming, bucketToday, bucketThisWeek, bucketThisMonth, bucketOlder}
	out := make([]result.FacetCount, 0, len(order))
	for _, b := range order {
		if counts[b] == 0 {
			continue
		}
		out = append(out, result.FacetCount{Value: b, Count: counts[b], Label: dateBucketLabels[b]})
	}
	return out
}

func dateBucket(t, dayStart time.Time) string {
	switch {
	case !t.Before(dayStart.AddDate(0, 0, 1)):
		return bucketUpcoming
	case !t.Before(dayStart):
		return bucketToday
	case !t.Before(dayStart.AddDate(0, 0, -6)):
		return bucketThisWeek
	case !t.Before(dayStart.AddDate(0, 0, -30)):
		return bucketThisMonth
	default:
		return bucketOlder
	}
}
