package result

import (
	"time"

	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
)

// Item is a single scored search hit. It is a closed union: the only
// implementations are Meeting, Minutes, Transcript and ActionItem in this
// package, so callers can type-switch exhaustively on the concrete type or
// dispatch on Kind.
type Item interface {
	// Kind returns the source-kind discriminator.
	Kind() kind.Kind

	// ID returns the record identifier. (Kind, ID) is the dedup identity.
	ID() string

	// Score returns the relevance score in [0, 1].
	Score() float64

	// Contexts returns match context windows in field-priority order.
	Contexts() []MatchContext

	// OccurredAt returns the instant used for date sorting and date facets.
	// The zero time means the record carries no usable date.
	OccurredAt() time.Time

	sealed()
}

// base carries the fields shared by every item variant.
type base struct {
	id       string
	score    float64
	contexts []MatchContext
}

func (b *base) ID() string               { return b.id }
func (b *base) Score() float64           { return b.score }
func (b *base) Contexts() []MatchContext { return b.contexts }
func (b *base) sealed()                  {}

// Meeting is a search hit on a meeting record.
type Meeting struct {
	base
	title        string
	host         string
	participants []string
	startTime    time.Time
}

// NewMeeting creates a meeting result item.
func NewMeeting(
	id string, score float64, contexts []MatchContext,
	title, host string, participants []string, startTime time.Time,
) *Meeting {
	return &Meeting{
		base:         base{id: id, score: score, contexts: contexts},
		title:        title,
		host:         host,
		participants: participants,
		startTime:    startTime,
	}
}

// Kind returns kind.Meeting.
func (m *Meeting) Kind() kind.Kind { return kind.Meeting }

// Title returns the meeting title.
func (m *Meeting) Title() string { return m.title }

// Host returns the meeting host display name.
func (m *Meeting) Host() string { return m.host }

// Participants returns the participant display names.
func (m *Meeting) Participants() []string { return m.participants }

// StartTime returns when the meeting started.
func (m *Meeting) StartTime() time.Time { return m.startTime }

// OccurredAt returns the meeting start time.
func (m *Meeting) OccurredAt() time.Time { return m.startTime }

// Minutes is a search hit on a generated-minutes record.
type Minutes struct {
	base
	meetingID   string
	summary     string
	generatedAt time.Time
}

// NewMinutes creates a minutes result item.
func NewMinutes(
	id string, score float64, contexts []MatchContext,
	meetingID, summary string, generatedAt time.Time,
) *Minutes {
	return &Minutes{
		base:        base{id: id, score: score, contexts: contexts},
		meetingID:   meetingID,
		summary:     summary,
		generatedAt: generatedAt,
	}
}

// Kind returns kind.Minutes.
func (m *Minutes) Kind() kind.Kind { return kind.Minutes }

// MeetingID returns the parent meeting identifier.
func (m *Minutes) MeetingID() string { return m.meetingID }

// Summary returns the minutes summary snippet.
func (m *Minutes) Summary() string { return m.summary }

// GeneratedAt returns when the minutes were generated.
func (m *Minutes) GeneratedAt() time.Time { return m.generatedAt }

// OccurredAt returns the generation time.
func (m *Minutes) OccurredAt() time.Time { return m.generatedAt }

// Transcript is a search hit on a transcript segment.
type Transcript struct {
	base
	meetingID string
	speaker   string
	startedAt time.Time
	offsetSec float64
}

// NewTranscript creates a transcript result item.
func NewTranscript(
	id string, score float64, contexts []MatchContext,
	meetingID, speaker string, startedAt time.Time, offsetSec float64,
) *Transcript {
	return &Transcript{
		base:      base{id: id, score: score, contexts: contexts},
		meetingID: meetingID,
		speaker:   speaker,
		startedAt: startedAt,
		offsetSec: offsetSec,
	}
}

// Kind returns kind.Transcript.
func (t *Transcript) Kind() kind.Kind { return kind.Transcript }

// MeetingID returns the parent meeting identifier.
func (t *Transcript) MeetingID() string { return t.meetingID }

// Speaker returns the speaker display name.
func (t *Transcript) Speaker() string { return t.speaker }

// StartedAt returns the wall-clock start of the segment.
func (t *Transcript) StartedAt() time.Time { return t.startedAt }

// OffsetSec returns the segment offset within the meeting, in seconds.
func (t *Transcript) OffsetSec() float64 { return t.offsetSec }

// OccurredAt returns the segment start time.
func (t *Transcript) OccurredAt() time.Time { return t.startedAt }

// ActionItem is a search hit on an action-item record.
type ActionItem struct {
	base
	meetingID string
	title     string
	assignee  string
	priority  string
	status    string
	dueDate   *time.Time
}

// NewActionItem creates an action-item result item.
func NewActionItem(
	id string, score float64, contexts []MatchContext,
	meetingID, title, assignee, priority, status string, dueDate *time.Time,
) *ActionItem {
	return &ActionItem{
		base:      base{id: id, score: score, contexts: contexts},
		meetingID: meetingID,
		title:     title,
		assignee:  assignee,
		priority:  priority,
		status:    status,
		dueDate:   dueDate,
	}
}

// Kind returns kind.ActionItem.
func (a *ActionItem) Kind() kind.Kind { return kind.ActionItem }

// MeetingID returns the parent meeting identifier.
func (a *ActionItem) MeetingID() string { return a.meetingID }

// Title returns the action-item title.
func (a *ActionItem) Title() string { return a.title }

// Assignee returns the assignee display name.
func (a *ActionItem) Assignee() string { return a.assignee }

// Priority returns the priority label.
func (a *ActionItem) Priority() string { return a.priority }

// Status returns the workflow status.
func (a *ActionItem) Status() string { return a.status }

// DueDate returns the due date (nil when unset).
func (a *ActionItem) DueDate() *time.Time { return a.dueDate }

// OccurredAt returns the due date, or the zero time when unset.
func (a *ActionItem) OccurredAt() time.Time {
	if a.dueDate == nil {
		return time.Time{}
	}
	return *a.dueDate
}
