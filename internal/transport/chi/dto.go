package chi

import (
	"time"

	"github.com/quorumhq/minutesearch/internal/domain/search/result"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// searchRequest is the JSON search request body.
type searchRequest struct {
	Query         string         `json:"query"`
	Kinds         []string       `json:"kinds,omitempty"`
	Page          int            `json:"page,omitempty"`
	Limit         int            `json:"limit,omitempty"`
	SortBy        string         `json:"sort_by,omitempty"`
	SortOrder     string         `json:"sort_order,omitempty"`
	IncludeFacets bool           `json:"include_facets,omitempty"`
	Filters       *searchFilters `json:"filters,omitempty"`
}

// searchFilters is the structured filter bag of the request.
type searchFilters struct {
	MeetingID   string     `json:"meeting_id,omitempty"`
	Participant string     `json:"participant,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
}

// searchResponse is the JSON response envelope.
type searchResponse struct {
	Query           string      `json:"query"`
	Results         []searchHit `json:"results"`
	Total           int         `json:"total"`
	Page            int         `json:"page"`
	Limit           int         `json:"limit"`
	TotalPages      int         `json:"totalPages"`
	HasMore         bool        `json:"hasMore"`
	Facets          *facetsDTO  `json:"facets,omitempty"`
	ExecutionTimeMs float64     `json:"executionTimeMs"`
}

// searchHit is one result item, flattened across kinds and discriminated
// by the kind field.
type searchHit struct {
	Kind     string            `json:"kind"`
	ID       string            `json:"id"`
	Score    float64           `json:"score"`
	Contexts []matchContextDTO `json:"contexts"`

	// Meeting fields.
	Title        string     `json:"title,omitempty"`
	Host         string     `json:"host,omitempty"`
	Participants []string   `json:"participants,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`

	// Minutes fields.
	MeetingID   string     `json:"meeting_id,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`

	// Transcript fields.
	Speaker   string     `json:"speaker,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	OffsetSec *float64   `json:"offset_sec,omitempty"`

	// Action item fields.
	Assignee string     `json:"assignee,omitempty"`
	Priority string     `json:"priority,omitempty"`
	Status   string     `json:"status,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

type matchContextDTO struct {
	Before string `json:"before"`
	Match  string `json:"match"`
	After  string `json:"after"`
	Field  string `json:"field"`
}

type facetsDTO struct {
	ByType        []facetCountDTO `json:"byType,omitempty"`
	ByParticipant []facetCountDTO `json:"byParticipant,omitempty"`
	ByDateRange   []facetCountDTO `json:"byDateRange,omitempty"`
}

type facetCountDTO struct {
	Value string `json:"value"`
	Count int    `json:"count"`
	Label string `json:"label"`
}

func responseToDTO(resp result.Response) searchResponse {
	hits := make([]searchHit, 0, len(resp.Results))
	for _, item := range resp.Results {
		hits = append(hits, itemToDTO(item))
	}

	return searchResponse{
		Query:           resp.Query,
		Results:         hits,
		Total:           resp.Total,
		Page:            resp.Page,
		Limit:           resp.Limit,
		TotalPages:      resp.TotalPages,
		HasMore:         resp.HasMore,
		Facets:          facetsToDTO(resp.Facets),
		ExecutionTimeMs: resp.ExecutionTimeMs,
	}
}

// itemToDTO flattens one item variant. The switch is exhaustive: result.Item
// is a sealed union over these four types.
func itemToDTO(item result.Item) searchHit {
	hit := searchHit{
		Kind:     string(item.Kind()),
		ID:       item.ID(),
		Score:    item.Score(),
		Contexts: contextsToDTO(item.Contexts()),
	}

	switch it := item.(type) {
	case *result.Meeting:
		hit.Title = it.Title()
		hit.Host = it.Host()
		hit.Participants = it.Participants()
		hit.StartTime = timePtr(it.StartTime())
	case *result.Minutes:
		hit.MeetingID = it.MeetingID()
		hit.Summary = it.Summary()
		hit.GeneratedAt = timePtr(it.GeneratedAt())
	case *result.Transcript:
		hit.MeetingID = it.MeetingID()
		hit.Speaker = it.Speaker()
		hit.StartedAt = timePtr(it.StartedAt())
		offset := it.OffsetSec()
		hit.OffsetSec = &offset
	case *result.ActionItem:
		hit.MeetingID = it.MeetingID()
		hit.Title = it.Title()
		hit.Assignee = it.Assignee()
		hit.Priority = it.Priority()
		hit.Status = it.Status()
		hit.DueDate = it.DueDate()
	}

	return hit
}

func contextsToDTO(contexts []result.MatchContext) []matchContextDTO {
	out := make([]matchContextDTO, 0, len(contexts))
	for _, c := range contexts {
		out = append(out, matchContextDTO{
			Before: c.Before,
			Match:  c.Match,
			After:  c.After,
			Field:  c.Field,
		})
	}
	return out
}

func facetsToDTO(f *result.Facets) *facetsDTO {
	if f == nil {
		return nil
	}
	return &facetsDTO{
		ByType:        facetCountsToDTO(f.ByType),
		ByParticipant: facetCountsToDTO(f.ByParticipant),
		ByDateRange:   facetCountsToDTO(f.ByDateRange),
	}
}

func facetCountsToDTO(counts []result.FacetCount) []facetCountDTO {
	if len(counts) == 0 {
		return nil
	}
	out := make([]facetCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, facetCountDTO{Value: c.Value, Count: c.Count, Label: c.Label})
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
