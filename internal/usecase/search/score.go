package search

import "strings"

// Scoring tier fractions. Evaluated in order, first match wins:
// exact equality, prefix, weighted substring composite, word overlap.
const (
	prefixFraction      = 0.9
	substringBase       = 0.5
	positionFraction    = 0.2
	frequencyFraction   = 0.2
	lengthFraction      = 0.1
	wordOverlapFraction = 0.4

	// frequencyCap is the occurrence count at which the frequency factor
	// saturates.
	frequencyCap = 5
)

// score computes the relevance of text against query, weighted by the
// field's importance. The result is in [0, weight]. Pure and deterministic:
// case folding only, no trimming of interior whitespace, no stemming.
func score(text, query string, weight float64) float64 {
	if text == "" || strings.TrimSpace(query) == "" {
		return 0
	}

	t := strings.ToLower(text)
	q := strings.ToLower(query)

	if t == q {
		return weight
	}
	if strings.HasPrefix(t, q) {
		return prefixFraction * weight
	}

	if idx := strings.Index(t, q); idx >= 0 {
		position := 1 - float64(idx)/float64(len(t))
		frequency := float64(strings.Count(t, q)) / frequencyCap
		if frequency > 1 {
			frequency = 1
		}
		length := float64(len(q)) / float64(len(t))

		s := (substringBase +
			positionFraction*position +
			frequencyFraction*frequency +
			lengthFraction*length) * weight
		if s > weight {
			s = weight
		}
		return s
	}

	return wordOverlap(t, q) * wordOverlapFraction * weight
}

// wordOverlap returns the fraction of query words present verbatim in the
// text's word set. Both inputs are already case-folded.
func wordOverlap(text, query string) float64 {
	queryWords := strings.Fields(query)
	if len(queryWords) == 0 {
		return 0
	}

	textWords := strings.Fields(text)
	wordSet := make(map[string]struct{}, len(textWords))
	for _, w := range textWords {
		wordSet[w] = struct{}{}
	}

	matched := 0
	for _, w := range queryWords {
		if _, ok := wordSet[w]; ok {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return float64(matched) / float64(len(queryWords))
}
