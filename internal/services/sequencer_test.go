package services

import (
	"testing"
)

func TestNormalizeSequenceWellFormed(t *testing.T) {
	raw := []byte(`{"sequence":[
		{"label":"Limits","estimated_minutes":30,"difficulty":"Easy"},
		{"label":"Derivatives","estimated_minutes":60,"difficulty":"Medium"},
		{"label":"Chain rule","estimated_minutes":45,"difficulty":"Hard"}
	]}`)
	items := normalizeSequence(raw)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Label != "Limits" || items[0].EstimatedMinutes != 30 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[2].Difficulty != "Hard" {
		t.Fatalf("unexpected difficulty: %+v", items[2])
	}
}

func TestNormalizeSequencePreservesModelOrder(t *testing.T) {
	raw := []byte(`{"sequence":[
		{"label":"z-last-alphabetically","estimated_minutes":15,"difficulty":"Easy"},
		{"label":"a-first-alphabetically","estimated_minutes":15,"difficulty":"Easy"}
	]}`)
	items := normalizeSequence(raw)
	if len(items) != 2 || items[0].Label != "z-last-alphabetically" {
		t.Fatalf("order was not preserved: %+v", items)
	}
}

func TestNormalizeSequenceSkipsUnusableEntries(t *testing.T) {
	raw := []byte(`{"sequence":[
		{"label":"","estimated_minutes":30,"difficulty":"Easy"},
		{"label":"no duration","difficulty":"Easy"},
		{"label":"negative","estimated_minutes":-15,"difficulty":"Easy"},
		{"label":"stringly typed","estimated_minutes":"45","difficulty":"Medium"},
		{"label":"good","estimated_minutes":30,"difficulty":"Easy"}
	]}`)
	items := normalizeSequence(raw)
	if len(items) != 2 {
		t.Fatalf("expected 2 usable items, got %d: %+v", len(items), items)
	}
	if items[0].Label != "stringly typed" || items[0].EstimatedMinutes != 45 {
		t.Fatalf("string durations should parse: %+v", items[0])
	}
	if items[1].Label != "good" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestNormalizeSequenceMalformedDocuments(t *testing.T) {
	for _, raw := range []string{
		``,
		`not json at all`,
		`{"wrong_key":[]}`,
		`{"sequence":"not a list"}`,
		`{"sequence":[]}`,
	} {
		items := normalizeSequence([]byte(raw))
		if len(items) != 0 {
			t.Fatalf("raw %q should normalize to empty, got %+v", raw, items)
		}
	}
}
