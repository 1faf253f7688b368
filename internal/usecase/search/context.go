package search

import (
	"strings"

	"github.com/quorumhq/minutesearch/internal/domain/search/result"
)

// defaultContextWindow is the number of characters kept on each side of a
// match when the caller does not configure a window.
const defaultContextWindow = 50

// matchContexts finds every case-insensitive occurrence of query in text and
// builds a bounded context window around each. The query is matched
// literally; regex metacharacters carry no meaning. Matches never overlap:
// each scan resumes after the end of the previous match. Returns nil when
// the query is empty or whitespace-only, or the text is empty.
func matchContexts(text, query string, window int, field string) []result.MatchContext {
	if text == "" || strings.TrimSpace(query) == "" {
		return nil
	}
	if window < 0 {
		window = 0
	}

	t := strings.ToLower(text)
	q := strings.ToLower(query)

	var contexts []result.MatchContext
	for from := 0; from < len(t); {
		i := strings.Index(t[from:], q)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(q)
		contexts = append(contexts, buildContext(text, start, end, window, field))
		from = end
	}
	return contexts
}

// buildContext slices the window around [start, end) out of the original
// text, so the match keeps its source casing. Ellipsis markers are added
// exactly when text beyond the window was cut off. Offsets come from the
// case-folded copy; bounds are clamped in case folding changed byte
// lengths for unusual code points.
func buildContext(text string, start, end, window int, field string) result.MatchContext {
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}

	beforeStart := start - window
	if beforeStart < 0 {
		beforeStart = 0
	}
	before := text[beforeStart:start]
	if beforeStart > 0 {
		before = result.Ellipsis + before
	}

	afterEnd := end + window
	if afterEnd > len(text) {
		afterEnd = len(text)
	}
	after := text[end:afterEnd]
	if afterEnd < len(text) {
		after += result.Ellipsis
	}

	return result.MatchContext{
		Before: before,
		Match:  text[start:end],
		After:  after,
		Field:  field,
	}
}
