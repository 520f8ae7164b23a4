package domain

import "context"

// Matcher is the boundary to the external matching service. Implementations
// must treat the remote response as untrusted text requiring defensive parsing
// and must retry transient failures internally.
type Matcher interface {
	// MatchCatalog sends the prepared shortlist+items prompt and returns the
	// matcher's best-effort structured match list.
	MatchCatalog(ctx context.Context, prompt string) ([]MatchedItem, error)

	// ExtractItems pulls requested items out of raw list text.
	ExtractItems(ctx context.Context, rawText string) ([]RequestedItem, error)

	// ExtractItemsFromImage pulls requested items out of a photographed list.
	ExtractItemsFromImage(ctx context.Context, mimeType string, data []byte) ([]RequestedItem, error)
}
