package search

import (
	"context"

	"github.com/quorumhq/minutesearch/internal/domain/record"
)

// MeetingSource supplies candidate meeting records.
type MeetingSource interface {
	Meetings(ctx context.Context) ([]record.Meeting, error)
}

// MinutesSource supplies candidate generated-minutes records.
type MinutesSource interface {
	Minutes(ctx context.Context) ([]record.Minutes, error)
}

// TranscriptSource supplies candidate transcript segments.
type TranscriptSource interface {
	Transcripts(ctx context.Context) ([]record.TranscriptSegment, error)
}

// ActionItemSource supplies candidate action items.
type ActionItemSource interface {
	ActionItems(ctx context.Context) ([]record.ActionItem, error)
}

// Sources bundles the per-kind candidate suppliers. The data-access layer
// behind each source decides scope and visibility; the engine only scans
// what it is handed. A nil source is treated as an empty candidate set.
type Sources struct {
	Meetings    MeetingSource
	Minutes     MinutesSource
	Transcripts TranscriptSource
	ActionItems ActionItemSource
}
