// Package scoring computes the overall confidence of a reconciled resume
// from the heuristic baseline, AI outcome, and validation results.
package scoring

// Weights holds the confidence formula constants. They are carried over
// from the original tuning; named and overridable rather than inlined.
type Weights struct {
	// AIBonus rewards a successful AI pass that produced at least one
	// verified improvement
	AIBonus float64
	// ValidationPenalty is subtracted per structural validation error
	ValidationPenalty float64
	// ImprovementBonus is added per recorded improvement; the clamp below
	// saturates it
	ImprovementBonus float64
	// Floor and Ceiling bound the final score
	Floor   float64
	Ceiling float64
}

// DefaultWeights returns the default confidence weights
func DefaultWeights() Weights {
	return Weights{
		AIBonus:           0.2,
		ValidationPenalty: 0.05,
		ImprovementBonus:  0.02,
		Floor:             0.1,
		Ceiling:           1.0,
	}
}

// Score computes the final confidence from the heuristic confidence, AI
// outcome, validation error count, and improvement count, clamped to
// [Floor, Ceiling].
func Score(heuristicConfidence float64, aiSucceeded bool, validationErrorCount, improvementCount int, w Weights) float64 {
	confidence := heuristicConfidence

	if aiSucceeded && improvementCount > 0 {
		confidence += w.AIBonus
	}
	confidence -= w.ValidationPenalty * float64(validationErrorCount)
	confidence += w.ImprovementBonus * float64(improvementCount)

	if confidence < w.Floor {
		confidence = w.Floor
	}
	if confidence > w.Ceiling {
		confidence = w.Ceiling
	}
	return confidence
}
