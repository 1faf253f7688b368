package result

// Ellipsis marks a context window that was cut short of the full text.
const Ellipsis = "..."

// MatchContext is a bounded window of text around a single match occurrence,
// used for highlighting in a result list. Immutable once constructed.
type MatchContext struct {
	// Before is the text preceding the match, prefixed with an ellipsis
	// marker when more text exists beyond the window.
	Before string

	// Match is the matched substring exactly as it appears in the source
	// text (original casing, not the query's).
	Match string

	// After is the text following the match, suffixed with an ellipsis
	// marker when more text exists beyond the window.
	After string

	// Field names the record field the match was found in.
	Field string
}
