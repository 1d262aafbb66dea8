// Package content turns a slide's described content into a canonical,
// render-ready component set: classification into user-supplied vs
// AI-producible elements, generation against the text backend, alias
// normalization and completion-state derivation. Backend and parse
// failures never escape this package; every path resolves to
// deterministic fallback content.
package content

import "context"

// TextBackend is the slice of the text client this package needs.
// internal/services.TextClient satisfies it.
type TextBackend interface {
	Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
	GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error)
}
