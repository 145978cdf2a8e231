// Package pattern implements a lexicon-based polarity and subjectivity
// analyzer for short English text. Each sentiment-laden word contributes its
// lexicon rating, adjusted by preceding degree adverbs and negations, and the
// text-level scores are the means over all contributing words.
package pattern

import (
	"math"
	"strings"

	"github.com/gonum/floats"
)

const (
	// negationScalar is the empirically derived factor applied to a word's
	// polarity when a negation precedes it ("not good" reads mildly bad,
	// not strongly bad).
	negationScalar = -0.5

	// lookback is how many preceding tokens are scanned for boosters and
	// negations.
	lookback = 3
)

type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// PolarityScores rates text on the analyzer's two scales: polarity in [-1,1]
// and subjectivity in [0,1]. Text with no lexicon hits scores (0, 0).
// Deterministic and side-effect free for fixed input.
func (a *Analyzer) PolarityScores(text string) (polarity, subjectivity float64) {
	words := strings.Fields(strings.ToLower(text))

	var polarities, subjectivities []float64
	for i, word := range words {
		e, ok := lexicon[word]
		if !ok {
			continue
		}

		pol, sub := e.polarity, e.subjectivity
		for j := max(0, i-lookback); j < i; j++ {
			if intensity, ok := boosters[words[j]]; ok {
				pol *= intensity
				sub = math.Min(1, sub*intensity)
			}
			if _, ok := negations[words[j]]; ok {
				pol *= negationScalar
			}
		}

		polarities = append(polarities, clamp(pol, -1, 1))
		subjectivities = append(subjectivities, sub)
	}

	if len(polarities) == 0 {
		return 0, 0
	}

	n := float64(len(polarities))
	polarity = clamp(floats.Sum(polarities)/n, -1, 1)
	subjectivity = clamp(floats.Sum(subjectivities)/n, 0, 1)
	return polarity, subjectivity
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
