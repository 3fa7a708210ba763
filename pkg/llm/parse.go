package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"tripweaver/internal/models/response_models"
)

var (
	ErrNotJSON            = errors.New("model response is not valid JSON")
	ErrIncompleteDocument = errors.New("model response is missing required itinerary fields")
)

// StripCodeFences removes a leading/trailing markdown code fence so a
// response wrapped in ```json parses identically to a bare one.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseItinerary parses the model output into the itinerary document and
// checks the structure rather than trusting the shape blindly: a document
// with no summary or no days is rejected even when it is valid JSON.
func ParseItinerary(raw string) (*response_models.GeneratedItinerary, error) {
	cleaned := StripCodeFences(raw)

	var doc response_models.GeneratedItinerary
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, ErrNotJSON
	}

	if doc.Summary == "" || len(doc.Itinerary) == 0 {
		return nil, ErrIncompleteDocument
	}
	return &doc, nil
}
