package search

import "github.com/quorumhq/minutesearch/internal/domain/search/kind"

// FieldWeights sets the relative importance of each searchable field.
// Weights multiply a field's relevance score; they are expected in (0, 1].
type FieldWeights struct {
	MeetingTitle       float64
	MeetingDescription float64
	MeetingHost        float64

	MinutesSummary float64
	MinutesContent float64

	TranscriptText    float64
	TranscriptSpeaker float64

	ActionTitle       float64
	ActionDescription float64
	ActionAssignee    float64
}

// DefaultFieldWeights weights titles and summaries above free text, and
// people fields lowest.
func DefaultFieldWeights() FieldWeights {
	return FieldWeights{
		MeetingTitle:       1.0,
		MeetingDescription: 0.7,
		MeetingHost:        0.5,

		MinutesSummary: 0.9,
		MinutesContent: 0.7,

		TranscriptText:    0.8,
		TranscriptSpeaker: 0.5,

		ActionTitle:       1.0,
		ActionDescription: 0.7,
		ActionAssignee:    0.5,
	}
}

// DefaultTypeLabels maps each source kind to its display label.
func DefaultTypeLabels() map[kind.Kind]string {
	return map[kind.Kind]string{
		kind.Meeting:    "Meetings",
		kind.Minutes:    "Minutes",
		kind.Transcript: "Transcripts",
		kind.ActionItem: "Action items",
	}
}
