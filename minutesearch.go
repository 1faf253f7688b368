// Package minutesearch is the embedded entry point to the meeting-records
// search engine: relevance scoring, match-context extraction and
// multi-source merge/aggregation over caller-supplied candidate records.
//
// The engine holds no state between queries and performs no I/O of its
// own; candidate records come from the Sources the caller wires in
// (in-memory, Redis-backed, or any custom data-access layer).
//
//	store := memory.NewStore()
//	store.AddMeetings(meetings...)
//
//	engine := minutesearch.New(minutesearch.Sources{
//	    Meetings: store,
//	    Minutes:  store,
//	})
//	resp, _ := engine.Query("project kickoff").Limit(10).Facets().Do(ctx)
package minutesearch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/quorumhq/minutesearch/internal/domain/record"
	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
	"github.com/quorumhq/minutesearch/internal/domain/search/query"
	"github.com/quorumhq/minutesearch/internal/domain/search/result"
	searchuc "github.com/quorumhq/minutesearch/internal/usecase/search"
)

// Re-exported types, so embedding callers never import internal packages.
type (
	// Sources bundles the per-kind candidate record suppliers.
	Sources = searchuc.Sources

	// FieldWeights sets the relative importance of searchable fields.
	FieldWeights = searchuc.FieldWeights

	// Kind discriminates result sources.
	Kind = kind.Kind

	// Filters is the optional structured filter bag.
	Filters = query.Filters

	// SortBy selects the ordering dimension.
	SortBy = query.SortBy

	// SortOrder selects the ordering direction.
	SortOrder = query.SortOrder

	// Response is the paginated search response envelope.
	Response = result.Response

	// Item is one scored search hit (a closed union over result kinds).
	Item = result.Item

	// MatchContext is a highlight window around one match occurrence.
	MatchContext = result.MatchContext

	// FacetCount is one facet bucket tally.
	FacetCount = result.FacetCount

	// Facets holds the per-dimension tallies.
	Facets = result.Facets

	// MeetingResult is the meeting item variant.
	MeetingResult = result.Meeting

	// MinutesResult is the minutes item variant.
	MinutesResult = result.Minutes

	// TranscriptResult is the transcript item variant.
	TranscriptResult = result.Transcript

	// ActionItemResult is the action-item item variant.
	ActionItemResult = result.ActionItem

	// Meeting is a candidate meeting record.
	Meeting = record.Meeting

	// Minutes is a candidate generated-minutes record.
	Minutes = record.Minutes

	// TranscriptSegment is a candidate transcript segment.
	TranscriptSegment = record.TranscriptSegment

	// ActionItem is a candidate action-item record.
	ActionItem = record.ActionItem
)

// Source kind constants.
const (
	KindMeeting    = kind.Meeting
	KindMinutes    = kind.Minutes
	KindTranscript = kind.Transcript
	KindActionItem = kind.ActionItem
)

// Sort constants.
const (
	SortByRelevance = query.SortByRelevance
	SortByDate      = query.SortByDate
	SortAsc         = query.SortAsc
	SortDesc        = query.SortDesc
)

// Engine executes search queries against the configured sources.
type Engine struct {
	svc *searchuc.Service
}

type options struct {
	logger         *zap.Logger
	weights        *FieldWeights
	labels         map[Kind]string
	window         int
	maxFacetValues int
}

// Option configures the engine.
type Option func(*options)

// WithLogger sets the logger used by the search service. Default is a nop
// logger: the engine's algorithms are pure and silent.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFieldWeights overrides the per-field scoring weights.
func WithFieldWeights(w FieldWeights) Option {
	return func(o *options) { o.weights = &w }
}

// WithTypeLabels overrides the facet display labels per source kind.
func WithTypeLabels(labels map[Kind]string) Option {
	return func(o *options) { o.labels = labels }
}

// WithContextWindow sets the match context window size in characters.
func WithContextWindow(chars int) Option {
	return func(o *options) { o.window = chars }
}

// WithMaxFacetValues caps the participant facet bucket list.
func WithMaxFacetValues(n int) Option {
	return func(o *options) { o.maxFacetValues = n }
}

// New creates an engine over the given sources.
func New(sources Sources, opts ...Option) *Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	svc := searchuc.New(sources, o.logger)
	if o.weights != nil {
		svc = svc.WithFieldWeights(*o.weights)
	}
	if o.labels != nil {
		svc = svc.WithTypeLabels(o.labels)
	}
	if o.window > 0 {
		svc = svc.WithContextWindow(o.window)
	}
	if o.maxFacetValues > 0 {
		svc = svc.WithMaxFacetValues(o.maxFacetValues)
	}

	return &Engine{svc: svc}
}

// SearchQuery describes one search invocation. Zero values take the engine
// defaults (all kinds, page 1, limit 20, relevance descending).
type SearchQuery struct {
	Text          string
	Kinds         []Kind
	Filters       Filters
	Page          int
	Limit         int
	SortBy        SortBy
	SortOrder     SortOrder
	IncludeFacets bool
}

// Search validates the query and runs the full pipeline. Page and limit
// are clamped rather than rejected; empty or over-long text is an error
// accompanied by the canonical empty response.
func (e *Engine) Search(ctx context.Context, q SearchQuery) (Response, error) {
	dq, err := query.New(
		q.Text, q.Kinds, q.Filters,
		q.Page, q.Limit,
		q.SortBy, q.SortOrder,
		q.IncludeFacets,
	)
	if err != nil {
		return result.EmptyResponse(q.Text), fmt.Errorf("invalid query: %w", err)
	}
	return e.svc.Search(ctx, &dq)
}

// EmptyResponse builds the canonical zero-result response for a query.
func EmptyResponse(queryText string) Response {
	return result.EmptyResponse(queryText)
}

// DefaultFieldWeights returns the engine's default per-field weights.
func DefaultFieldWeights() FieldWeights {
	return searchuc.DefaultFieldWeights()
}
