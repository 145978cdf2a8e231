package sentiment

// Label is the three-way sentiment classification.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Thresholds are strict; a combined score of exactly 0.1 or -0.1 is neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Classify averages the two polarity signals and maps the mean to a label.
// Total and deterministic over its whole input domain.
func Classify(polarity, compound float64) (combined float64, label Label) {
	combined = (polarity + compound) / 2

	switch {
	case combined > positiveThreshold:
		return combined, LabelPositive
	case combined < negativeThreshold:
		return combined, LabelNegative
	default:
		return combined, LabelNeutral
	}
}
