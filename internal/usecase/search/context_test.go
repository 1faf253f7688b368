package search

import (
	"strings"
	"testing"
)

func TestMatchContexts_SingleMatch(t *testing.T) {
	text := "This is a test meeting about project updates"
	contexts := matchContexts(text, "meeting", 20, "title")

	if len(contexts) != 1 {
		t.Fatalf("expected 1 context, got %d", len(contexts))
	}

	c := contexts[0]
	if c.Match != "meeting" {
		t.Errorf("expected match %q, got %q", "meeting", c.Match)
	}
	if c.Field != "title" {
		t.Errorf("expected field %q, got %q", "title", c.Field)
	}
	if c.Before != "This is a test " {
		t.Errorf("unexpected before: %q", c.Before)
	}
	if c.After != " about project updat..." {
		t.Errorf("unexpected after: %q", c.After)
	}
}

func TestMatchContexts_MultipleMatches(t *testing.T) {
	text := "The meeting was great. The next meeting will be better."
	contexts := matchContexts(text, "meeting", 15, "content")

	if len(contexts) != 2 {
		t.Fatalf("expected 2 contexts, got %d", len(contexts))
	}
	for i, c := range contexts {
		if c.Match != "meeting" {
			t.Errorf("context %d: expected match %q, got %q", i, "meeting", c.Match)
		}
	}
}

func TestMatchContexts_PreservesCasing(t *testing.T) {
	contexts := matchContexts("running the TEST suite", "test", 50, "content")

	if len(contexts) != 1 {
		t.Fatalf("expected 1 context, got %d", len(contexts))
	}
	if contexts[0].Match != "TEST" {
		t.Errorf("expected original casing %q, got %q", "TEST", contexts[0].Match)
	}
}

func TestMatchContexts_TruncationMarkers(t *testing.T) {
	text := strings.Repeat("x", 40) + "needle" + strings.Repeat("y", 40)
	contexts := matchContexts(text, "needle", 10, "content")

	if len(contexts) != 1 {
		t.Fatalf("expected 1 context, got %d", len(contexts))
	}

	c := contexts[0]
	if !strings.HasPrefix(c.Before, "...") {
		t.Errorf("expected leading ellipsis, got before %q", c.Before)
	}
	if !strings.HasSuffix(c.After, "...") {
		t.Errorf("expected trailing ellipsis, got after %q", c.After)
	}
	if c.Before != "..."+strings.Repeat("x", 10) {
		t.Errorf("unexpected before: %q", c.Before)
	}
	if c.After != strings.Repeat("y", 10)+"..." {
		t.Errorf("unexpected after: %q", c.After)
	}
}

func TestMatchContexts_NoMarkersAtBoundaries(t *testing.T) {
	contexts := matchContexts("needle in a haystack", "needle", 50, "content")

	if len(contexts) != 1 {
		t.Fatalf("expected 1 context, got %d", len(contexts))
	}
	c := contexts[0]
	if c.Before != "" {
		t.Errorf("match at text start: expected empty before, got %q", c.Before)
	}
	if strings.HasSuffix(c.After, "...") {
		t.Errorf("window covers text end: unexpected trailing ellipsis in %q", c.After)
	}
	if c.Before+c.Match+c.After != "needle in a haystack" {
		t.Errorf("untruncated context should reconstruct the text, got %q",
			c.Before+c.Match+c.After)
	}
}

func TestMatchContexts_NonOverlapping(t *testing.T) {
	// "aaaa" holds two non-overlapping "aa" occurrences, not three.
	contexts := matchContexts("aaaa", "aa", 10, "content")
	if len(contexts) != 2 {
		t.Fatalf("expected 2 non-overlapping contexts, got %d", len(contexts))
	}
}

func TestMatchContexts_LiteralMetacharacters(t *testing.T) {
	contexts := matchContexts("cost is $12 (approx.)", "(approx.)", 5, "content")
	if len(contexts) != 1 {
		t.Fatalf("expected 1 context for literal metacharacters, got %d", len(contexts))
	}
	if contexts[0].Match != "(approx.)" {
		t.Errorf("unexpected match: %q", contexts[0].Match)
	}
}

func TestMatchContexts_EmptyInputs(t *testing.T) {
	if contexts := matchContexts("", "query", 10, "f"); contexts != nil {
		t.Errorf("empty text: expected nil, got %v", contexts)
	}
	if contexts := matchContexts("text", "", 10, "f"); contexts != nil {
		t.Errorf("empty query: expected nil, got %v", contexts)
	}
	if contexts := matchContexts("text", "  ", 10, "f"); contexts != nil {
		t.Errorf("whitespace query: expected nil, got %v", contexts)
	}
	if contexts := matchContexts("text", "missing", 10, "f"); contexts != nil {
		t.Errorf("no occurrence: expected nil, got %v", contexts)
	}
}
