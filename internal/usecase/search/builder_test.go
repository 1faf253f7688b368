package search

import (
	"testing"
	"time"

	"github.com/quorumhq/minutesearch/internal/domain/record"
	"github.com/quorumhq/minutesearch/internal/domain/search/result"
)

func TestBuildMeetings_ZeroScoreExcluded(t *testing.T) {
	meetings := []record.Meeting{
		{ID: "hit", Title: "Budget review"},
		{ID: "miss", Title: "Roadmap planning"},
	}

	items := buildMeetings(meetings, "budget", DefaultFieldWeights(), defaultContextWindow)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID() != "hit" {
		t.Errorf("expected hit, got %s", items[0].ID())
	}
}

func TestBuildMeetings_BestFieldWins(t *testing.T) {
	meetings := []record.Meeting{{
		ID:          "m1",
		Title:       "budget",
		Description: "notes mentioning budget halfway through the text",
	}}

	items := buildMeetings(meetings, "budget", DefaultFieldWeights(), defaultContextWindow)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	// The title matches exactly at weight 1.0; the weaker description
	// match must not dilute the record score.
	if items[0].Score() != 1.0 {
		t.Errorf("expected max field score 1.0, got %f", items[0].Score())
	}
}

func TestBuildMeetings_ContextsInFieldOrder(t *testing.T) {
	meetings := []record.Meeting{{
		ID:          "m1",
		Title:       "budget review",
		Description: "annual budget discussion",
		Host:        "alice",
	}}

	items := buildMeetings(meetings, "budget", DefaultFieldWeights(), defaultContextWindow)
	contexts := items[0].Contexts()
	if len(contexts) != 2 {
		t.Fatalf("expected 2 contexts, got %d", len(contexts))
	}
	if contexts[0].Field != "title" || contexts[1].Field != "description" {
		t.Errorf("contexts out of field order: %s, %s", contexts[0].Field, contexts[1].Field)
	}
}

func TestBuildMinutes_FieldMapping(t *testing.T) {
	generatedAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	minutes := []record.Minutes{{
		ID:          "n1",
		MeetingID:   "m1",
		Summary:     "decisions on budget",
		Content:     "full notes",
		GeneratedAt: generatedAt,
	}}

	items := buildMinutes(minutes, "budget", DefaultFieldWeights(), defaultContextWindow)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	m, ok := items[0].(*result.Minutes)
	if !ok {
		t.Fatalf("expected *result.Minutes, got %T", items[0])
	}
	if m.MeetingID() != "m1" || m.Summary() != "decisions on budget" {
		t.Errorf("unexpected fields: %s, %s", m.MeetingID(), m.Summary())
	}
	if !m.GeneratedAt().Equal(generatedAt) {
		t.Errorf("unexpected generatedAt: %v", m.GeneratedAt())
	}
}

func TestBuildTranscripts_SpeakerMatch(t *testing.T) {
	segments := []record.TranscriptSegment{{
		ID:        "t1",
		MeetingID: "m1",
		Speaker:   "Alice",
		Text:      "nothing relevant here",
		OffsetSec: 42.5,
	}}

	items := buildTranscripts(segments, "alice", DefaultFieldWeights(), defaultContextWindow)
	if len(items) != 1 {
		t.Fatalf("expected speaker match to score, got %d items", len(items))
	}

	tr := items[0].(*result.Transcript)
	if tr.Speaker() != "Alice" || tr.OffsetSec() != 42.5 {
		t.Errorf("unexpected fields: %s, %f", tr.Speaker(), tr.OffsetSec())
	}
	// Exact speaker match at speaker weight.
	if items[0].Score() != DefaultFieldWeights().TranscriptSpeaker {
		t.Errorf("expected speaker-weight score, got %f", items[0].Score())
	}
}

func TestBuildActionItems_NilDueDate(t *testing.T) {
	actions := []record.ActionItem{{
		ID:    "a1",
		Title: "update budget sheet",
	}}

	items := buildActionItems(actions, "budget", DefaultFieldWeights(), defaultContextWindow)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	a := items[0].(*result.ActionItem)
	if a.DueDate() != nil {
		t.Errorf("expected nil due date, got %v", a.DueDate())
	}
	if !a.OccurredAt().IsZero() {
		t.Errorf("expected zero OccurredAt for nil due date, got %v", a.OccurredAt())
	}
}
