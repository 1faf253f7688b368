package result

// FacetCount is the tally for one bucket of a facet dimension.
type FacetCount struct {
	// Value is the raw bucket value (kind string, participant name, bucket key).
	Value string

	// Count is the number of results in the bucket. Always positive:
	// zero-count buckets are omitted.
	Count int

	// Label is the display string for the bucket.
	Label string
}

// Facets holds per-dimension result tallies for filter-UI affordances.
// Nil slices mean the dimension was not requested.
type Facets struct {
	ByType        []FacetCount
	ByParticipant []FacetCount
	ByDateRange   []FacetCount
}
