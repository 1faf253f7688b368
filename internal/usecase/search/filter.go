package search

import (
	"strings"
	"time"

	"github.com/quorumhq/minutesearch/internal/domain/record"
	"github.com/quorumhq/minutesearch/internal/domain/search/query"
)

// Structured filters narrow the candidate set before scoring. A filter
// dimension constrains only record types that carry it: priority never
// excludes a meeting, and minutes pass a participant filter untouched.
// A record that carries the dimension but has no value (action item with
// no due date under a date filter) is excluded.

func filterMeetings(records []record.Meeting, f query.Filters) []record.Meeting {
	if f.IsEmpty() {
		return records
	}
	out := records[:0:0]
	for _, m := range records {
		if f.MeetingID != "" && m.ID != f.MeetingID {
			continue
		}
		if f.Participant != "" && !meetingHasParticipant(m, f.Participant) {
			continue
		}
		if !inRange(m.StartTime, f.From, f.To) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func filterMinutes(records []record.Minutes, f query.Filters) []record.Minutes {
	if f.IsEmpty() {
		return records
	}
	out := records[:0:0]
	for _, m := range records {
		if f.MeetingID != "" && m.MeetingID != f.MeetingID {
			continue
		}
		if !inRange(m.GeneratedAt, f.From, f.To) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func filterTranscripts(records []record.TranscriptSegment, f query.Filters) []record.TranscriptSegment {
	if f.IsEmpty() {
		return records
	}
	out := records[:0:0]
	for _, seg := range records {
		if f.MeetingID != "" && seg.MeetingID != f.MeetingID {
			continue
		}
		if f.Participant != "" && !strings.EqualFold(seg.Speaker, f.Participant) {
			continue
		}
		if !inRange(seg.StartedAt, f.From, f.To) {
			continue
		}
		out = append(out, seg)
	}
	return out
}

func filterActionItems(records []record.ActionItem, f query.Filters) []record.ActionItem {
	if f.IsEmpty() {
		return records
	}
	out := records[:0:0]
	for _, a := range records {
		if f.MeetingID != "" && a.MeetingID != f.MeetingID {
			continue
		}
		if f.Participant != "" && !strings.EqualFold(a.Assignee, f.Participant) {
			continue
		}
		if f.Priority != "" && !strings.EqualFold(a.Priority, f.Priority) {
			continue
		}
		if f.Status != "" && !strings.EqualFold(a.Status, f.Status) {
			continue
		}
		if f.From != nil || f.To != nil {
			if a.DueDate == nil || !inRange(*a.DueDate, f.From, f.To) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func meetingHasParticipant(m record.Meeting, name string) bool {
	if strings.EqualFold(m.Host, name) {
		return true
	}
	for _, p := range m.Participants {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
}

// inRange checks t against an optional [from, to] window. Nil bounds are
// open; a zero t only passes a fully open window.
func inRange(t time.Time, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if t.IsZero() {
		return false
	}
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
