package classifier

import (
	"context"
	"strings"

	"github.com/freightdock/drayman/internal/documents"
)

type keywordRule struct {
	keywords   []string
	docType    documents.DocumentType
	confidence float64
	reason     string
}

// Ordering matters: the first matching rule wins.
var keywordRules = []keywordRule{
	{
		keywords:   []string{"bol", "bill_of_lading", "bill-of-lading", "billoflading", "lading"},
		docType:    documents.TypeBOL,
		confidence: 0.7,
		reason:     "filename suggests a bill of lading",
	},
	{
		keywords:   []string{"pod", "proof_of_delivery", "proof-of-delivery", "delivery"},
		docType:    documents.TypePOD,
		confidence: 0.7,
		reason:     "filename suggests a proof of delivery",
	},
	{
		keywords:   []string{"invoice", "inv_", "billing"},
		docType:    documents.TypeInvoice,
		confidence: 0.7,
		reason:     "filename suggests a freight invoice",
	},
}

// Heuristic classifies by filename keyword matching with hardcoded
// confidence values. It is used when no document text is available and
// never makes an external call.
type Heuristic struct{}

// NewHeuristic creates a filename-based classifier.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Classify matches the lowercased filename against keyword rules.
// An unmatched filename yields a low-confidence "other" result so that
// callers surface the retry affordance.
func (h *Heuristic) Classify(_ context.Context, in Input) (*Result, error) {
	name := strings.ToLower(in.Filename)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return &Result{
					Type:       rule.docType,
					Confidence: rule.confidence,
					Reason:     rule.reason,
					Source:     SourceHeuristic,
				}, nil
			}
		}
	}

	return &Result{
		Type:       documents.TypeOther,
		Confidence: 0.3,
		Reason:     "filename matched no known document type pattern",
		Source:     SourceHeuristic,
	}, nil
}
