package search

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
	"github.com/quorumhq/minutesearch/internal/domain/search/query"
	"github.com/quorumhq/minutesearch/internal/domain/search/result"
	"github.com/quorumhq/minutesearch/internal/metrics"
)

// Service executes a search query over caller-scoped candidate records:
// per-source scoring, merge/dedup, facet aggregation and pagination.
// It holds no per-query state; every call is an independent, pure pass
// over whatever the sources return.
type Service struct {
	sources   Sources
	weights   FieldWeights
	labels    map[kind.Kind]string
	window    int
	maxFacets int
	logger    *zap.Logger
}

// New creates a search service with default weights, labels and context
// window.
func New(sources Sources, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sources: sources,
		weights: DefaultFieldWeights(),
		labels:  DefaultTypeLabels(),
		window:  defaultContextWindow,
		logger:  logger,
	}
}

// WithFieldWeights overrides the per-field scoring weights.
func (s *Service) WithFieldWeights(w FieldWeights) *Service {
	s.weights = w
	return s
}

// WithTypeLabels overrides the per-kind facet display labels.
func (s *Service) WithTypeLabels(labels map[kind.Kind]string) *Service {
	if len(labels) > 0 {
		s.labels = labels
	}
	return s
}

// WithContextWindow sets the match context window size in characters.
func (s *Service) WithContextWindow(chars int) *Service {
	if chars > 0 {
		s.window = chars
	}
	return s
}

// WithMaxFacetValues caps the participant facet bucket list (0 = unlimited).
func (s *Service) WithMaxFacetValues(n int) *Service {
	s.maxFacets = n
	return s
}

// Search runs the full pipeline for one validated query. The per-source
// builders run concurrently; they share no mutable state and write into
// fixed slots, so the merge order (meeting, minutes, transcript,
// action_item) stays deterministic. Empty candidate sets are a normal
// zero-result case, not an error.
func (s *Service) Search(ctx context.Context, q *query.Query) (result.Response, error) {
	startedAt := time.Now()

	var lists [4][]result.Item
	var errs [4]error
	var wg sync.WaitGroup

	run := func(slot int, fn func() ([]result.Item, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lists[slot], errs[slot] = fn()
		}()
	}

	if q.HasTarget(kind.Meeting) && s.sources.Meetings != nil {
		run(0, func() ([]result.Item, error) { return s.searchMeetings(ctx, q) })
	}
	if q.HasTarget(kind.Minutes) && s.sources.Minutes != nil {
		run(1, func() ([]result.Item, error) { return s.searchMinutes(ctx, q) })
	}
	if q.HasTarget(kind.Transcript) && s.sources.Transcripts != nil {
		run(2, func() ([]result.Item, error) { return s.searchTranscripts(ctx, q) })
	}
	if q.HasTarget(kind.ActionItem) && s.sources.ActionItems != nil {
		run(3, func() ([]result.Item, error) { return s.searchActionItems(ctx, q) })
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return result.Response{}, fmt.Errorf("search: %w", err)
		}
	}

	merged := merge(lists[0], lists[1], lists[2], lists[3])
	sortResults(merged, q)

	var facets *result.Facets
	if q.IncludeFacets() {
		facets = facetize(merged, FacetOptions{
			ByType:        true,
			ByParticipant: true,
			ByDateRange:   true,
			TypeLabels:    s.labels,
			MaxValues:     s.maxFacets,
			Now:           startedAt,
		})
	}

	resp := assemble(q.Text(), merged, q.Page(), q.Limit(), startedAt, facets)

	metrics.SearchQueryDuration.WithLabelValues(string(q.SortBy())).
		Observe(time.Since(startedAt).Seconds())
	metrics.SearchQueriesTotal.WithLabelValues(string(q.SortBy())).Inc()
	metrics.SearchResultCount.Observe(float64(resp.Total))

	s.logger.Debug("search executed",
		zap.String("query", q.Text()),
		zap.Int("total", resp.Total),
		zap.Int("page", resp.Page),
		zap.Float64("elapsed_ms", resp.ExecutionTimeMs),
	)

	return resp, nil
}

func (s *Service) searchMeetings(ctx context.Context, q *query.Query) ([]result.Item, error) {
	records, err := s.sources.Meetings.Meetings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load meetings: %w", err)
	}
	records = filterMeetings(records, q.Filters())
	return buildMeetings(records, q.Text(), s.weights, s.window), nil
}

func (s *Service) searchMinutes(ctx context.Context, q *query.Query) ([]result.Item, error) {
	records, err := s.sources.Minutes.Minutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load minutes: %w", err)
	}
	records = filterMinutes(records, q.Filters())
	return buildMinutes(records, q.Text(), s.weights, s.window), nil
}

func (s *Service) searchTranscripts(ctx context.Context, q *query.Query) ([]result.Item, error) {
	records, err := s.sources.Transcripts.Transcripts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transcripts: %w", err)
	}
	records = filterTranscripts(records, q.Filters())
	return buildTranscripts(records, q.Text(), s.weights, s.window), nil
}

func (s *Service) searchActionItems(ctx context.Context, q *query.Query) ([]result.Item, error) {
	records, err := s.sources.ActionItems.ActionItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load action items: %w", err)
	}
	records = filterActionItems(records, q.Filters())
	return buildActionItems(records, q.Text(), s.weights, s.window), nil
}

// sortResults re-orders the merged list for non-default sort requests.
// The merge already produced a stable score-descending order; both re-sorts
// below are stable, so ties keep merge encounter order.
func sortResults(items []result.Item, q *query.Query) {
	switch {
	case q.SortBy() == query.SortByDate:
		asc := q.SortOrder() == query.SortAsc
		sort.SliceStable(items, func(i, j int) bool {
			ti, tj := items[i].OccurredAt(), items[j].OccurredAt()
			if asc {
				return ti.Before(tj)
			}
			return tj.Before(ti)
		})
	case q.SortOrder() == query.SortAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Score() < items[j].Score()
		})
	}
}
