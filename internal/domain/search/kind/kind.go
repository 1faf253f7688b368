package kind

// Kind identifies the source a search result was drawn from.
type Kind string

// Source kind constants.
const (
	Meeting    Kind = "meeting"
	Minutes    Kind = "minutes"
	Transcript Kind = "transcript"
	ActionItem Kind = "action_item"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Meeting || k == Minutes || k == Transcript || k == ActionItem
}

// All returns every source kind in merge-priority order.
// The merger's first-seen-wins dedup makes this order meaningful.
func All() []Kind {
	return []Kind{Meeting, Minutes, Transcript, ActionItem}
}
