package result

import "github.com/quorumhq/minutesearch/internal/domain/search/query"

// Response is the final paginated search response envelope.
//
// Invariants: len(Results) <= Limit, HasMore == (Page*Limit < Total),
// TotalPages == ceil(Total/Limit) and 0 iff Total == 0.
type Response struct {
	// Query echoes the free-text query.
	Query string

	// Results is the page slice of the merged, score-ordered result list.
	Results []Item

	// Total is the post-dedup, pre-pagination result count.
	Total int

	// Page is the 1-based page this response covers.
	Page int

	// Limit is the page size.
	Limit int

	// TotalPages is the number of pages at this limit.
	TotalPages int

	// HasMore reports whether pages beyond this one exist.
	HasMore bool

	// Facets holds optional per-dimension tallies.
	Facets *Facets

	// ExecutionTimeMs is the wall-clock query execution time in
	// milliseconds. Informational only.
	ExecutionTimeMs float64
}

// EmptyResponse builds the canonical zero-result response for early exits
// (validation failure upstream, no candidate records).
func EmptyResponse(queryText string) Response {
	return Response{
		Query:      queryText,
		Results:    []Item{},
		Total:      0,
		Page:       query.DefaultPage,
		Limit:      query.DefaultLimit,
		TotalPages: 0,
		HasMore:    false,
	}
}
