package classifier_test

import (
	"context"
	"testing"

	"github.com/freightdock/drayman/internal/classifier"
	"github.com/freightdock/drayman/internal/documents"
)

func TestHeuristicClassify(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		wantType       documents.DocumentType
		wantConfidence float64
	}{
		{"bol prefix", "BOL_20240115.pdf", documents.TypeBOL, 0.7},
		{"bill of lading", "bill-of-lading-final.pdf", documents.TypeBOL, 0.7},
		{"pod", "pod-scan.pdf", documents.TypePOD, 0.7},
		{"delivery", "delivery_receipt.jpg", documents.TypePOD, 0.7},
		{"invoice", "Invoice_998.pdf", documents.TypeInvoice, 0.7},
		{"inv prefix", "INV_2291.pdf", documents.TypeInvoice, 0.7},
		{"unmatched", "scan001.pdf", documents.TypeOther, 0.3},
		{"bol wins over invoice", "bol_invoice_combined.pdf", documents.TypeBOL, 0.7},
	}

	h := classifier.NewHeuristic()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.Classify(context.Background(), classifier.Input{
				Filename: tt.filename,
			})
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}

			if result.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", result.Type, tt.wantType)
			}
			if result.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", result.Confidence, tt.wantConfidence)
			}
			if result.Source != classifier.SourceHeuristic {
				t.Errorf("Source = %q, want %q", result.Source, classifier.SourceHeuristic)
			}
		})
	}
}

func TestHeuristicUnmatchedOffersRetry(t *testing.T) {
	h := classifier.NewHeuristic()

	result, err := h.Classify(context.Background(), classifier.Input{
		Filename: "unlabeled.png",
	})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if !classifier.ShouldOfferRetry(result.Confidence) {
		t.Errorf(
			"unmatched filename confidence %v should offer retry",
			result.Confidence,
		)
	}
}
