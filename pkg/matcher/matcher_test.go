package matcher

import (
	"encoding/json"
	"strings"
	"testing"
)

func record(t *testing.T, raw string) interface{} {
	t.Helper()
	var rec interface{}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("bad test JSON: %v", err)
	}
	return rec
}

func TestMatchCountsNonOverlapping(t *testing.T) {
	rec := record(t, `{"slug": "x", "fields": {"body": "a foo bar foo"}}`)

	matches := Match(rec, "foo")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Path != "fields.body" {
		t.Errorf("path = %q, want %q", matches[0].Path, "fields.body")
	}
	if matches[0].Count != 2 {
		t.Errorf("count = %d, want 2", matches[0].Count)
	}
}

func TestMatchOverlappingOccurrences(t *testing.T) {
	rec := record(t, `{"body": "aaaa"}`)
	matches := Match(rec, "aa")
	if len(matches) != 1 || matches[0].Count != 2 {
		t.Fatalf("expected non-overlapping count 2, got %+v", matches)
	}
}

func TestMatchLengthChangingCaseRunes(t *testing.T) {
	// Some runes grow when lowercased (U+023A 'Ⱥ' is 2 bytes, lowercase
	// U+2C65 'ⱥ' is 3), so offset math must never mix a lowered copy with
	// the original string.
	rec := map[string]interface{}{"body": "Ⱥfoo"}
	matches := Match(rec, "foo")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %+v", matches)
	}
	if matches[0].Count != 1 {
		t.Errorf("count = %d, want 1", matches[0].Count)
	}
	if matches[0].Value != "Ⱥfoo" {
		t.Errorf("value = %q, want %q", matches[0].Value, "Ⱥfoo")
	}

	// Length-changing runes inside the needle region, matched across case.
	rec = map[string]interface{}{"body": "xȺy and more"}
	matches = Match(rec, "ⱥ")
	if len(matches) != 1 || matches[0].Count != 1 {
		t.Fatalf("expected 1 cross-case match, got %+v", matches)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	rec := record(t, `{"body": "Hello World"}`)
	if len(Match(rec, "WORLD")) != 1 {
		t.Error("expected case-insensitive match")
	}
}

func TestMatchEntityVariants(t *testing.T) {
	rec := record(t, `{"body": "price &pound;50 today"}`)
	matches := Match(rec, "£50")
	if len(matches) != 1 || matches[0].Count != 1 {
		t.Fatalf("expected entity-variant match, got %+v", matches)
	}
}

func TestMatchNumbersAndBooleans(t *testing.T) {
	rec := record(t, `{"qty": 42, "live": true}`)
	if len(Match(rec, "42")) != 1 {
		t.Error("expected number leaf to match")
	}
	if len(Match(rec, "true")) != 1 {
		t.Error("expected boolean leaf to match")
	}
}

func TestMatchSkipsExcludedKeys(t *testing.T) {
	rec := record(t, `{"meta": {"body": "foo"}, "url": "foo", "href": "foo"}`)
	if got := Match(rec, "foo"); len(got) != 0 {
		t.Errorf("expected excluded keys to be skipped, got %+v", got)
	}
}

func TestMatchEmptyTerm(t *testing.T) {
	rec := record(t, `{"body": "anything"}`)
	if got := Match(rec, "   "); got != nil {
		t.Errorf("expected no matches for blank term, got %+v", got)
	}
}

func TestSnippetWindow(t *testing.T) {
	long := strings.Repeat("x", 150) + "needle" + strings.Repeat("y", 150)
	rec := map[string]interface{}{"body": long}

	matches := Match(rec, "needle")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	v := matches[0].Value
	if !strings.HasPrefix(v, "...") || !strings.HasSuffix(v, "...") {
		t.Errorf("expected ellipses on both sides, got %q", v)
	}
	// 100 chars context either side, the term, and two ellipses.
	wantLen := 3 + 100 + len("needle") + 100 + 3
	if len(v) != wantLen {
		t.Errorf("snippet length = %d, want %d", len(v), wantLen)
	}
}

func TestSnippetNoEllipsisWhenShort(t *testing.T) {
	rec := map[string]interface{}{"body": "tiny needle here"}
	matches := Match(rec, "needle")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Value != "tiny needle here" {
		t.Errorf("expected the full string without ellipses, got %q", matches[0].Value)
	}
}

func TestSnippetEllipsisOneSide(t *testing.T) {
	long := "needle" + strings.Repeat("y", 150)
	rec := map[string]interface{}{"body": long}
	matches := Match(rec, "needle")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	v := matches[0].Value
	if strings.HasPrefix(v, "...") {
		t.Errorf("did not expect a leading ellipsis: %q", v)
	}
	if !strings.HasSuffix(v, "...") {
		t.Errorf("expected a trailing ellipsis: %q", v)
	}
}

func TestContains(t *testing.T) {
	with := record(t, `{"body": "has foo inside"}`)
	without := record(t, `{"body": "nothing here"}`)

	if !Contains(with, "foo") {
		t.Error("Contains = false for a record with the term")
	}
	if Contains(without, "foo") {
		t.Error("Contains = true for a record without the term")
	}
}
