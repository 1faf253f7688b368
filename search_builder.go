package minutesearch

import (
	"context"
	"time"
)

// QueryBuilder is a fluent builder for search invocations.
type QueryBuilder struct {
	engine *Engine
	q      SearchQuery
}

// Query starts a fluent search for the given text.
func (e *Engine) Query(text string) *QueryBuilder {
	return &QueryBuilder{engine: e, q: SearchQuery{Text: text}}
}

// Kinds restricts the search to the given source kinds.
func (b *QueryBuilder) Kinds(kinds ...Kind) *QueryBuilder {
	b.q.Kinds = kinds
	return b
}

// Page sets the 1-based result page.
func (b *QueryBuilder) Page(n int) *QueryBuilder {
	b.q.Page = n
	return b
}

// Limit sets the page size.
func (b *QueryBuilder) Limit(n int) *QueryBuilder {
	b.q.Limit = n
	return b
}

// Sort sets the ordering dimension and direction.
func (b *QueryBuilder) Sort(by SortBy, order SortOrder) *QueryBuilder {
	b.q.SortBy = by
	b.q.SortOrder = order
	return b
}

// Facets requests facet aggregation alongside the results.
func (b *QueryBuilder) Facets() *QueryBuilder {
	b.q.IncludeFacets = true
	return b
}

// ForMeeting restricts results to records of one meeting.
func (b *QueryBuilder) ForMeeting(meetingID string) *QueryBuilder {
	b.q.Filters.MeetingID = meetingID
	return b
}

// ByParticipant restricts results to records involving the given person.
func (b *QueryBuilder) ByParticipant(name string) *QueryBuilder {
	b.q.Filters.Participant = name
	return b
}

// WithPriority restricts action items to the given priority.
func (b *QueryBuilder) WithPriority(priority string) *QueryBuilder {
	b.q.Filters.Priority = priority
	return b
}

// WithStatus restricts action items to the given status.
func (b *QueryBuilder) WithStatus(status string) *QueryBuilder {
	b.q.Filters.Status = status
	return b
}

// Between restricts results to records dated within [from, to].
func (b *QueryBuilder) Between(from, to time.Time) *QueryBuilder {
	b.q.Filters.From = &from
	b.q.Filters.To = &to
	return b
}

// Do executes the search.
func (b *QueryBuilder) Do(ctx context.Context) (Response, error) {
	return b.engine.Search(ctx, b.q)
}
