package llm

import (
	"errors"
	"testing"
)

const sampleDoc = `{
  "summary": "A weekend in Lisbon",
  "itinerary": [{"day": 1, "date": "2026-09-10", "title": "Alfama walk"}],
  "totalBudget": 600
}`

func TestParseItineraryBareAndFencedAreIdentical(t *testing.T) {
	bare, err := ParseItinerary(sampleDoc)
	if err != nil {
		t.Fatalf("unexpected error on bare JSON: %v", err)
	}

	fenced, err := ParseItinerary("```json\n" + sampleDoc + "\n```")
	if err != nil {
		t.Fatalf("unexpected error on fenced JSON: %v", err)
	}

	if bare.Summary != fenced.Summary || len(bare.Itinerary) != len(fenced.Itinerary) {
		t.Error("fenced output must parse identically to bare output")
	}
}

func TestParseItineraryPlainFence(t *testing.T) {
	doc, err := ParseItinerary("```\n" + sampleDoc + "\n```")
	if err != nil {
		t.Fatalf("unexpected error on plain fence: %v", err)
	}
	if doc.Summary != "A weekend in Lisbon" {
		t.Errorf("unexpected summary %q", doc.Summary)
	}
}

func TestParseItineraryRejectsNonJSON(t *testing.T) {
	_, err := ParseItinerary("I'm sorry, I can't produce an itinerary right now.")
	if !errors.Is(err, ErrNotJSON) {
		t.Fatalf("expected ErrNotJSON, got %v", err)
	}
}

func TestParseItineraryRejectsIncompleteDocument(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing summary", `{"itinerary": [{"day": 1}]}`},
		{"missing days", `{"summary": "Trip"}`},
		{"empty days", `{"summary": "Trip", "itinerary": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseItinerary(tt.raw); !errors.Is(err, ErrIncompleteDocument) {
				t.Fatalf("expected ErrIncompleteDocument, got %v", err)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := StripCodeFences(tt.in); got != tt.want {
			t.Errorf("StripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
