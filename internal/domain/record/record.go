// Package record holds the candidate records the engine matches against.
// They are plain in-memory values supplied by the caller's data-access
// layer; the engine never loads or persists them itself.
package record

import "time"

// Meeting is a scheduled or past meeting.
type Meeting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Host         string    `json:"host"`
	Participants []string  `json:"participants"`
	StartTime    time.Time `json:"start_time"`
	DurationMin  int       `json:"duration_min"`
}

// Minutes is a generated minutes document for a meeting.
type Minutes struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meeting_id"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

// TranscriptSegment is one speaker turn of a meeting transcript.
type TranscriptSegment struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	StartedAt time.Time `json:"started_at"`
	OffsetSec float64   `json:"offset_sec"`
}

// ActionItem is a follow-up task extracted from a meeting.
type ActionItem struct {
	ID          string     `json:"id"`
	MeetingID   string     `json:"meeting_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}
