package classifier

// Tier is the discrete confidence band presented to users and automation.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Confidence band thresholds. Applied uniformly everywhere a confidence
// score is tiered.
const (
	HighConfidenceThreshold = 0.85
	LowConfidenceThreshold  = 0.60
)

// TierFor maps a confidence score in [0,1] to its band. Callers must clamp
// out-of-range values upstream.
func TierFor(v float64) Tier {
	switch {
	case v >= HighConfidenceThreshold:
		return TierHigh
	case v >= LowConfidenceThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// ShouldOfferRetry reports whether a score is low enough that callers
// should expose a manual reclassify affordance.
func ShouldOfferRetry(v float64) bool {
	return v < LowConfidenceThreshold
}
