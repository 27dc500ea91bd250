package quiz

// Tier is a band of final scores that selects the feedback message.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// Lower bounds, inclusive.
const (
	HighThreshold   = 80
	MediumThreshold = 60
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// Percentage returns score/total as a whole percentage, rounded half up.
// A non-positive total yields 0; Config.Validate rules that out.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (score*200 + total) / (2 * total)
}

// TierFor maps a percentage to its feedback tier.
func TierFor(percent int) Tier {
	switch {
	case percent >= HighThreshold:
		return TierHigh
	case percent >= MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}
