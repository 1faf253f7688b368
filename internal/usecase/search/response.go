package search

import (
	"time"

	"github.com/quorumhq/minutesearch/internal/domain/search/result"
)

// assemble applies pagination to the merged, ordered result list and builds
// the response envelope. A page past the end yields an empty slice, not an
// error; callers check HasMore / TotalPages.
func assemble(
	queryText string, merged []result.Item,
	page, limit int, startedAt time.Time, facets *result.Facets,
) result.Response {
	total := len(merged)

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	pageItems := []result.Item{}
	if start < total {
		end := start + limit
		if end > total {
			end = total
		}
		pageItems = merged[start:end]
	}

	elapsed := float64(time.Since(startedAt).Microseconds()) / 1000
	if elapsed < 0 {
		elapsed = 0
	}

	return result.Response{
		Query:           queryText,
		Results:         pageItems,
		Total:           total,
		Page:            page,
		Limit:           limit,
		TotalPages:      totalPages,
		HasMore:         page*limit < total,
		Facets:          facets,
		ExecutionTimeMs: elapsed,
	}
}
