package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quorumhq/minutesearch/internal/domain/record"
	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
	"github.com/quorumhq/minutesearch/internal/domain/search/query"
)

// --- Mocks ---

type mockMeetings struct {
	records []record.Meeting
	err     error
	called  bool
}

func (m *mockMeetings) Meetings(_ context.Context) ([]record.Meeting, error) {
	m.called = true
	return m.records, m.err
}

type mockMinutes struct {
	records []record.Minutes
	err     error
	called  bool
}

func (m *mockMinutes) Minutes(_ context.Context) ([]record.Minutes, error) {
	m.called = true
	return m.records, m.err
}

type mockTranscripts struct {
	records []record.TranscriptSegment
	err     error
	called  bool
}

func (m *mockTranscripts) Transcripts(_ context.Context) ([]record.TranscriptSegment, error) {
	m.called = true
	return m.records, m.err
}

type mockActions struct {
	records []record.ActionItem
	err     error
	called  bool
}

func (m *mockActions) ActionItems(_ context.Context) ([]record.ActionItem, error) {
	m.called = true
	return m.records, m.err
}

func makeQuery(t *testing.T, text string, targets ...kind.Kind) *query.Query {
	t.Helper()
	q, err := query.New(text, targets, query.Filters{}, 0, 0, "", "", false)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return &q
}

// --- Tests ---

func TestSearch_MergesAcrossSources(t *testing.T) {
	meetings := &mockMeetings{records: []record.Meeting{
		{ID: "m1", Title: "budget review"},
	}}
	minutes := &mockMinutes{records: []record.Minutes{
		{ID: "n1", Summary: "notes on the budget discussion"},
	}}
	svc := New(Sources{Meetings: meetings, Minutes: minutes}, nil)

	resp, err := svc.Search(context.Background(), makeQuery(t, "budget"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("expected 2 results, got %d", resp.Total)
	}
	if !meetings.called || !minutes.called {
		t.Error("expected both sources to be queried")
	}
	// Prefix title match (0.9) outranks the buried summary substring.
	if resp.Results[0].Kind() != kind.Meeting {
		t.Errorf("expected meeting first, got %s", resp.Results[0].Kind())
	}
}

func TestSearch_TargetsRestrictSources(t *testing.T) {
	meetings := &mockMeetings{records: []record.Meeting{{ID: "m1", Title: "budget"}}}
	minutes := &mockMinutes{records: []record.Minutes{{ID: "n1", Summary: "budget"}}}
	svc := New(Sources{Meetings: meetings, Minutes: minutes}, nil)

	resp, err := svc.Search(context.Background(), makeQuery(t, "budget", kind.Minutes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meetings.called {
		t.Error("meetings source must not be queried when not targeted")
	}
	if resp.Total != 1 || resp.Results[0].Kind() != kind.Minutes {
		t.Fatalf("expected a single minutes result, got %d", resp.Total)
	}
}

func TestSearch_NilSourceIsEmpty(t *testing.T) {
	svc := New(Sources{}, nil)

	resp, err := svc.Search(context.Background(), makeQuery(t, "budget"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 0 {
		t.Fatalf("expected 0 results, got %d", resp.Total)
	}
	if resp.Results == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestSearch_SourceErrorPropagates(t *testing.T) {
	sourceErr := errors.New("connection refused")
	svc := New(Sources{
		Meetings: &mockMeetings{records: []record.Meeting{{ID: "m1", Title: "budget"}}},
		Minutes:  &mockMinutes{err: sourceErr},
	}, nil)

	_, err := svc.Search(context.Background(), makeQuery(t, "budget"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, sourceErr) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
	if !strings.Contains(err.Error(), "load minutes") {
		t.Errorf("expected source context in error, got %v", err)
	}
}

func TestSearch_DateSort(t *testing.T) {
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	meetings := &mockMeetings{records: []record.Meeting{
		{ID: "old", Title: "budget", StartTime: old},
		{ID: "recent", Title: "sync about budget", StartTime: recent},
	}}
	svc := New(Sources{Meetings: meetings}, nil)

	t.Run("descending", func(t *testing.T) {
		q, err := query.New("budget", nil, query.Filters{}, 0, 0, query.SortByDate, query.SortDesc, false)
		if err != nil {
			t.Fatalf("query.New: %v", err)
		}
		resp, err := svc.Search(context.Background(), &q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Results[0].ID() != "recent" {
			t.Errorf("expected newest first, got %s", resp.Results[0].ID())
		}
	})

	t.Run("ascending", func(t *testing.T) {
		q, err := query.New("budget", nil, query.Filters{}, 0, 0, query.SortByDate, query.SortAsc, false)
		if err != nil {
			t.Fatalf("query.New: %v", err)
		}
		resp, err := svc.Search(context.Background(), &q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Results[0].ID() != "old" {
			t.Errorf("expected oldest first, got %s", resp.Results[0].ID())
		}
	})
}

func TestSearch_FiltersNarrowCandidates(t *testing.T) {
	actions := &mockActions{records: []record.ActionItem{
		{ID: "a1", MeetingID: "m1", Title: "update budget", Priority: "high"},
		{ID: "a2", MeetingID: "m1", Title: "review budget", Priority: "low"},
	}}
	svc := New(Sources{ActionItems: actions}, nil)

	q, err := query.New("budget", nil, query.Filters{Priority: "high"}, 0, 0, "", "", false)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	resp, err := svc.Search(context.Background(), &q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 1 || resp.Results[0].ID() != "a1" {
		t.Fatalf("expected only the high-priority item, got %d results", resp.Total)
	}
}

func TestSearch_FacetsOnRequest(t *testing.T) {
	meetings := &mockMeetings{records: []record.Meeting{
		{ID: "m1", Title: "budget review", Host: "alice"},
	}}
	svc := New(Sources{Meetings: meetings}, nil)

	q, err := query.New("budget", nil, query.Filters{}, 0, 0, "", "", true)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	resp, err := svc.Search(context.Background(), &q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Facets == nil {
		t.Fatal("expected facets")
	}
	if len(resp.Facets.ByType) != 1 || resp.Facets.ByType[0].Value != string(kind.Meeting) {
		t.Errorf("unexpected type facets: %+v", resp.Facets.ByType)
	}

	// Not requested: no facets block.
	resp, err = svc.Search(context.Background(), makeQuery(t, "budget"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Facets != nil {
		t.Error("expected no facets when not requested")
	}
}

func TestSearch_DedupWithinSource(t *testing.T) {
	// The same record surfacing twice from one source keeps a single copy.
	meetings := &mockMeetings{records: []record.Meeting{
		{ID: "m1", Title: "budget review"},
		{ID: "m1", Title: "budget review"},
	}}
	svc := New(Sources{Meetings: meetings}, nil)

	resp, err := svc.Search(context.Background(), makeQuery(t, "budget"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected deduplicated result, got %d", resp.Total)
	}
}

func TestSearch_Pagination(t *testing.T) {
	records := make([]record.Meeting, 0, 25)
	for i := 0; i < 25; i++ {
		records = append(records, record.Meeting{
			ID:    string(rune('a' + i)),
			Title: "budget item",
		})
	}
	svc := New(Sources{Meetings: &mockMeetings{records: records}}, nil)

	q, err := query.New("budget", nil, query.Filters{}, 3, 10, "", "", false)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	resp, err := svc.Search(context.Background(), &q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 25 || resp.TotalPages != 3 {
		t.Errorf("expected 25 results over 3 pages, got %d over %d", resp.Total, resp.TotalPages)
	}
	if len(resp.Results) != 5 || resp.HasMore {
		t.Errorf("expected final partial page of 5, got %d (hasMore=%v)",
			len(resp.Results), resp.HasMore)
	}
}

func TestSearch_TranscriptSpeakerTargeted(t *testing.T) {
	transcripts := &mockTranscripts{records: []record.TranscriptSegment{
		{ID: "t1", MeetingID: "m1", Speaker: "Alice", Text: "we should revisit the budget"},
		{ID: "t2", MeetingID: "m1", Speaker: "Bob", Text: "agenda for next week"},
	}}
	svc := New(Sources{Transcripts: transcripts}, nil)

	resp, err := svc.Search(context.Background(), makeQuery(t, "budget", kind.Transcript))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !transcripts.called {
		t.Fatal("expected transcripts source to be queried")
	}
	if resp.Total != 1 || resp.Results[0].ID() != "t1" {
		t.Fatalf("expected only the matching segment, got %d results", resp.Total)
	}
}
