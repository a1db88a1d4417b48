package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/freightdock/drayman/internal/documents"
)

// DefaultReason is used when no rationale can be extracted from a response.
const DefaultReason = "could not determine classification from classifier response"

var (
	typePattern       = regexp.MustCompile(`(?im)type:\s*([a-z]+)`)
	confidencePattern = regexp.MustCompile(`(?im)confidence:\s*(0\.\d+)`)
	reasonPattern     = regexp.MustCompile(`(?im)reason:\s*(.+)$`)
)

// ParseFallback extracts a Result from free-text classifier output.
// It never fails: fields that cannot be extracted fall back to
// type=other, confidence=0.5, and DefaultReason. The returned Source is
// SourceFallback when at least one pattern matched and SourceDefaulted
// when none did, making the degrade path visible to callers.
func ParseFallback(content string) Result {
	result := Result{
		Type:       documents.TypeOther,
		Confidence: 0.5,
		Reason:     DefaultReason,
		Source:     SourceDefaulted,
	}

	if m := typePattern.FindStringSubmatch(content); m != nil {
		if t, err := documents.ParseDocumentType(m[1]); err == nil {
			result.Type = t
			result.Source = SourceFallback
		}
	}

	if m := confidencePattern.FindStringSubmatch(content); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			result.Confidence = v
			result.Source = SourceFallback
		}
	}

	if m := reasonPattern.FindStringSubmatch(content); m != nil {
		if reason := strings.TrimSpace(m[1]); reason != "" {
			result.Reason = reason
			result.Source = SourceFallback
		}
	}

	return result
}
