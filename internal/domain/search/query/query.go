package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
)

// Search parameter limits.
const (
	// MaxTextLength is the maximum allowed query text length.
	MaxTextLength = 500
	DefaultPage   = 1
	DefaultLimit  = 20
	MaxLimit      = 100
)

// SortBy selects the result ordering dimension.
type SortBy string

// SortOrder selects ascending or descending ordering.
type SortOrder string

// Sort constants.
const (
	SortByRelevance SortBy = "relevance"
	SortByDate      SortBy = "date"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid checks if the sort dimension is supported.
func (s SortBy) IsValid() bool { return s == SortByRelevance || s == SortByDate }

// IsValid checks if the sort order is supported.
func (s SortOrder) IsValid() bool { return s == SortAsc || s == SortDesc }

// Filters narrows the candidate set before merging. Zero values mean
// "no constraint"; the bag as a whole is optional.
type Filters struct {
	MeetingID   string
	Participant string
	Priority    string
	Status      string
	From        *time.Time
	To          *time.Time
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return f.MeetingID == "" && f.Participant == "" && f.Priority == "" &&
		f.Status == "" && f.From == nil && f.To == nil
}

// Query is a validated search query.
type Query struct {
	text          string
	targets       []kind.Kind
	filters       Filters
	page          int
	limit         int
	sortBy        SortBy
	sortOrder     SortOrder
	includeFacets bool
}

// New validates and normalizes search parameters.
// Defaults: targets=all kinds, page=1, limit=20, sortBy=relevance,
// sortOrder=desc. Out-of-range page and limit are clamped rather than
// rejected; empty or over-long text is an error.
func New(
	text string,
	targets []kind.Kind,
	filters Filters,
	page, limit int,
	sortBy SortBy,
	sortOrder SortOrder,
	includeFacets bool,
) (Query, error) {
	if strings.TrimSpace(text) == "" {
		return Query{}, fmt.Errorf("query text is required")
	}
	if len(text) > MaxTextLength {
		return Query{}, fmt.Errorf("query text too long (max %d chars)", MaxTextLength)
	}
	if len(targets) == 0 {
		targets = kind.All()
	}
	seen := make(map[kind.Kind]struct{}, len(targets))
	normalized := make([]kind.Kind, 0, len(targets))
	for _, k := range targets {
		if !k.IsValid() {
			return Query{}, fmt.Errorf("invalid source kind: %q", k)
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		normalized = append(normalized, k)
	}
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if sortBy == "" {
		sortBy = SortByRelevance
	}
	if !sortBy.IsValid() {
		return Query{}, fmt.Errorf("invalid sort_by: %q", sortBy)
	}
	if sortOrder == "" {
		sortOrder = SortDesc
	}
	if !sortOrder.IsValid() {
		return Query{}, fmt.Errorf("invalid sort_order: %q", sortOrder)
	}

	return Query{
		text:          text,
		targets:       normalized,
		filters:       filters,
		page:          page,
		limit:         limit,
		sortBy:        sortBy,
		sortOrder:     sortOrder,
		includeFacets: includeFacets,
	}, nil
}

// Text returns the free-text query.
func (q *Query) Text() string { return q.text }

// Targets returns the requested source kinds (deduplicated, order preserved).
func (q *Query) Targets() []kind.Kind { return q.targets }

// HasTarget reports whether the given kind was requested.
func (q *Query) HasTarget(k kind.Kind) bool {
	for _, t := range q.targets {
		if t == k {
			return true
		}
	}
	return false
}

// Filters returns the structured filter bag.
func (q *Query) Filters() Filters { return q.filters }

// Page returns the 1-based result page.
func (q *Query) Page() int { return q.page }

// Limit returns the page size.
func (q *Query) Limit() int { return q.limit }

// SortBy returns the ordering dimension.
func (q *Query) SortBy() SortBy { return q.sortBy }

// SortOrder returns the ordering direction.
func (q *Query) SortOrder() SortOrder { return q.sortOrder }

// IncludeFacets reports whether facet counts were requested.
func (q *Query) IncludeFacets() bool { return q.includeFacets }
