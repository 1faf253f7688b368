package search

import (
	"sort"

	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
	"github.com/quorumhq/minutesearch/internal/domain/search/result"
)

// mergeKey is the dedup identity of a result item.
type mergeKey struct {
	kind kind.Kind
	id   string
}

// merge combines per-source result lists into a single score-descending
// list. Dedup is first-seen-wins on (kind, id): callers that want the
// authoritative copy of a record must put its most-trusted source first.
// The sort is stable, so equal scores keep merge encounter order.
func merge(lists ...[]result.Item) []result.Item {
	seen := make(map[mergeKey]struct{})
	combined := make([]result.Item, 0)

	for _, list := range lists {
		for _, item := range list {
			key := mergeKey{kind: item.Kind(), id: item.ID()}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			combined = append(combined, item)
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Score() > combined[j].Score()
	})

	return combined
}
