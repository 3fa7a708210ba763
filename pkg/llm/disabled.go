package llm

import "context"

// DisabledComposer stands in when no model credentials are configured.
// The server still boots; generation requests fail with a clear error.
type DisabledComposer struct{}

func (DisabledComposer) ComposeItinerary(context.Context, ComposeRequest) (string, error) {
	return "", ErrNotConfigured
}
