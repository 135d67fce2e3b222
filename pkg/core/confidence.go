package core

// ConfidenceTier buckets a confidence score for display
type ConfidenceTier int

const (
	TierError ConfidenceTier = iota
	TierWarning
	TierSuccess
)

// TierFor maps a confidence score to its tier: above 80 is success,
// above 60 is warning, anything else is error.
func TierFor(confidence float64) ConfidenceTier {
	switch {
	case confidence > 80:
		return TierSuccess
	case confidence > 60:
		return TierWarning
	default:
		return TierError
	}
}

func (t ConfidenceTier) String() string {
	switch t {
	case TierSuccess:
		return "success"
	case TierWarning:
		return "warning"
	default:
		return "error"
	}
}
