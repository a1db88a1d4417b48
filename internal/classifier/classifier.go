// Package classifier implements the document classification core: the
// confidence policy, the external LLM invocation with its structured-output
// contract, the text fallback parser, and a filename heuristic variant.
// The package holds no state and performs no database access; persistence
// of results belongs to the classifications domain.
package classifier

import (
	"context"

	"github.com/freightdock/drayman/internal/documents"
)

// Source tags how a classification result was decoded.
type Source string

const (
	// SourceStructured indicates the result came from a valid function-call payload.
	SourceStructured Source = "structured"
	// SourceFallback indicates the result was regex-extracted from free text.
	SourceFallback Source = "fallback"
	// SourceDefaulted indicates nothing usable was found and defaults were applied.
	SourceDefaulted Source = "defaulted"
	// SourceHeuristic indicates the result came from filename pattern matching.
	SourceHeuristic Source = "heuristic"
)

// Input carries the material available for one classification attempt.
// Text holds extracted document text; when empty, implementations may
// fall back to filename metadata.
type Input struct {
	Filename    string
	ContentType string
	Text        string
}

// Result is the outcome of one classification attempt.
type Result struct {
	Type       documents.DocumentType `json:"type"`
	Confidence float64                `json:"confidence"`
	Reason     string                 `json:"reason"`
	Source     Source                 `json:"source"`
}

// Client produces exactly one Result per invocation. Implementations make
// at most one external call and never retry internally; retry is a
// caller-initiated re-invocation.
type Client interface {
	Classify(ctx context.Context, in Input) (*Result, error)
}
