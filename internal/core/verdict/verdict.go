// Package verdict maps an AI-generation probability to a label and a confidence tier
//
// Thresholds are applied to the unrounded probability. Callers round with Round
// only when the value leaves the service, so a score like 0.79996 stays "medium"
// even though it is reported as 0.8
package verdict

import (
	"fmt"
	"math"
)

// Label is the binary authorship decision
type Label string

const (
	// LabelAI marks text judged machine generated
	LabelAI Label = "AI-generated"
	// LabelHuman marks text judged human written
	LabelHuman Label = "human-authored"
)

// Tier is a coarse bucket of distance from the 0.5 decision boundary
type Tier string

const (
	// TierHigh is p > 0.8 or p < 0.2
	TierHigh Tier = "high"
	// TierMedium is p > 0.65 or p < 0.35
	TierMedium Tier = "medium"
	// TierLow is everything closer to 0.5
	TierLow Tier = "low"
)

// decision thresholds
const (
	boundary    = 0.5
	highUpper   = 0.8
	highLower   = 0.2
	mediumUpper = 0.65
	mediumLower = 0.35
)

// Verdict is the classifier output for one probability
type Verdict struct {
	Probability float64
	Label       Label
	Tier        Tier
}

// LabelOf returns LabelAI iff p > 0.5
func LabelOf(p float64) Label {
	if p > boundary {
		return LabelAI
	}
	return LabelHuman
}

// TierOf buckets p; the first matching rule wins
func TierOf(p float64) Tier {
	switch {
	case p > highUpper || p < highLower:
		return TierHigh
	case p > mediumUpper || p < mediumLower:
		return TierMedium
	default:
		return TierLow
	}
}

// Classify returns the label and tier for p. Probability is rounded for output
func Classify(p float64) Verdict {
	return Verdict{
		Probability: Round(p),
		Label:       LabelOf(p),
		Tier:        TierOf(p),
	}
}

// Round rounds p to 4 decimal digits, half away from zero
func Round(p float64) float64 {
	return math.Round(p*1e4) / 1e4
}

// Check rejects values that cannot be probabilities
func Check(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("probability %v outside [0,1]", p)
	}
	return nil
}

// Rank orders tiers from least to most confident, used for sorting and stats
func (t Tier) Rank() int {
	switch t {
	case TierHigh:
		return 2
	case TierMedium:
		return 1
	default:
		return 0
	}
}
