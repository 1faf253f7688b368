package search

import (
	"github.com/quorumhq/minutesearch/internal/domain/record"
	"github.com/quorumhq/minutesearch/internal/domain/search/result"
)

// scoredField is one record field participating in scoring, in priority
// order. Contexts from multiple fields concatenate in this order.
type scoredField struct {
	name   string
	text   string
	weight float64
}

// scoreFields computes the record's overall score (the maximum across
// fields, so one strong match is enough) and collects match contexts from
// every field with at least one occurrence.
func scoreFields(fields []scoredField, query string, window int) (float64, []result.MatchContext) {
	var best float64
	var contexts []result.MatchContext
	for _, f := range fields {
		if s := score(f.text, query, f.weight); s > best {
			best = s
		}
		contexts = append(contexts, matchContexts(f.text, query, window, f.name)...)
	}
	return best, contexts
}

// buildMeetings scores meeting candidates. Records that score zero are
// excluded entirely. Output order follows the input; ordering is only
// meaningful after the merge.
func buildMeetings(meetings []record.Meeting, query string, w FieldWeights, window int) []result.Item {
	items := make([]result.Item, 0, len(meetings))
	for i := range meetings {
		m := &meetings[i]
		s, contexts := scoreFields([]scoredField{
			{name: "title", text: m.Title, weight: w.MeetingTitle},
			{name: "description", text: m.Description, weight: w.MeetingDescription},
			{name: "host", text: m.Host, weight: w.MeetingHost},
		}, query, window)
		if s == 0 {
			continue
		}
		items = append(items, result.NewMeeting(
			m.ID, s, contexts, m.Title, m.Host, m.Participants, m.StartTime,
		))
	}
	return items
}

// buildMinutes scores generated-minutes candidates.
func buildMinutes(minutes []record.Minutes, query string, w FieldWeights, window int) []result.Item {
	items := make([]result.Item, 0, len(minutes))
	for i := range minutes {
		m := &minutes[i]
		s, contexts := scoreFields([]scoredField{
			{name: "summary", text: m.Summary, weight: w.MinutesSummary},
			{name: "content", text: m.Content, weight: w.MinutesContent},
		}, query, window)
		if s == 0 {
			continue
		}
		items = append(items, result.NewMinutes(
			m.ID, s, contexts, m.MeetingID, m.Summary, m.GeneratedAt,
		))
	}
	return items
}

// buildTranscripts scores transcript-segment candidates.
func buildTranscripts(segments []record.TranscriptSegment, query string, w FieldWeights, window int) []result.Item {
	items := make([]result.Item, 0, len(segments))
	for i := range segments {
		seg := &segments[i]
		s, contexts := scoreFields([]scoredField{
			{name: "text", text: seg.Text, weight: w.TranscriptText},
			{name: "speaker", text: seg.Speaker, weight: w.TranscriptSpeaker},
		}, query, window)
		if s == 0 {
			continue
		}
		items = append(items, result.NewTranscript(
			seg.ID, s, contexts, seg.MeetingID, seg.Speaker, seg.StartedAt, seg.OffsetSec,
		))
	}
	return items
}

// buildActionItems scores action-item candidates.
func buildActionItems(actions []record.ActionItem, query string, w FieldWeights, window int) []result.Item {
	items := make([]result.Item, 0, len(actions))
	for i := range actions {
		a := &actions[i]
		s, contexts := scoreFields([]scoredField{
			{name: "title", text: a.Title, weight: w.ActionTitle},
			{name: "description", text: a.Description, weight: w.ActionDescription},
			{name: "assignee", text: a.Assignee, weight: w.ActionAssignee},
		}, query, window)
		if s == 0 {
			continue
		}
		items = append(items, result.NewActionItem(
			a.ID, s, contexts, a.MeetingID, a.Title, a.Assignee, a.Priority, a.Status, a.DueDate,
		))
	}
	return items
}
