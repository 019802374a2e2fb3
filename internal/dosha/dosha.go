// Package dosha implements the rule-based wellness imbalance classifier.
package dosha

// Imbalance labels produced by Score.
const (
	LabelBalanced = "Balanced"
	LabelVata     = "Vata Imbalance"
	LabelPitta    = "Pitta Imbalance"
	LabelKapha    = "Kapha Imbalance"
)

// Fixed recommendations paired with each label.
const (
	recommendBalanced = "Your dosha balance looks good. Keep maintaining your routine!"
	recommendVata     = "Try to maintain regular sleep, calm activities, and meditation."
	recommendPitta    = "Avoid spicy food and practice cooling exercises or breathing."
	recommendKapha    = "Increase physical activity and eat light meals."
)

// Result is the outcome of scoring one submission.
type Result struct {
	Label          string
	Recommendation string
}

// Score classifies one day of observations into a dominant imbalance.
// Inputs must already be validated as finite numbers; Score performs no
// range clamping (sleep is conventionally 0-24, the scales 0-5).
//
// Each rule votes independently; the label with the most votes wins.
// Ties resolve vata, then pitta, then kapha — the comparison order below
// is part of the contract, not incidental.
func Score(sleep, appetite, stress, activity float64) Result {
	var vata, pitta, kapha int

	if sleep < 3 {
		vata++
	}
	if appetite > 4 || appetite < 2 {
		pitta++
	}
	if stress > 3 {
		vata++
		pitta++
	}
	if activity < 2 {
		kapha++
	}

	maxScore := vata
	if pitta > maxScore {
		maxScore = pitta
	}
	if kapha > maxScore {
		maxScore = kapha
	}

	switch {
	case maxScore == 0:
		return Result{Label: LabelBalanced, Recommendation: recommendBalanced}
	case maxScore == vata:
		return Result{Label: LabelVata, Recommendation: recommendVata}
	case maxScore == pitta:
		return Result{Label: LabelPitta, Recommendation: recommendPitta}
	default:
		return Result{Label: LabelKapha, Recommendation: recommendKapha}
	}
}
