package sentiment

import (
	"log/slog"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/sentiment-api/internal/sentiment/pattern"
)

// Scorer abstracts the two sentiment models behind a single capability
// interface so mocks can be substituted in tests without touching the
// pipeline logic.
type Scorer interface {
	// AnalyzePolarity returns a polarity in [-1,1] and a subjectivity in
	// [0,1] from lexical analysis of the text.
	AnalyzePolarity(text string) (polarity, subjectivity float64)
	// AnalyzeCompound returns a compound sentiment score in [-1,1] from a
	// rule-based lexicon tuned for short, informal text.
	AnalyzeCompound(text string) float64
}

var vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()

// DualScorer pairs the pattern analyzer with VADER. Both are read-only after
// construction, so a single instance is shared process-wide.
type DualScorer struct {
	pattern *pattern.Analyzer
}

var (
	scorerInstance *DualScorer
	scorerOnce     sync.Once
)

// GetScorer lazily initializes the process-wide analyzer pair.
func GetScorer() *DualScorer {
	scorerOnce.Do(func() {
		slog.Info("[Scorer] Initializing sentiment analyzers")
		scorerInstance = &DualScorer{pattern: pattern.NewAnalyzer()}
	})
	return scorerInstance
}

func (s *DualScorer) AnalyzePolarity(text string) (float64, float64) {
	return s.pattern.PolarityScores(text)
}

func (s *DualScorer) AnalyzeCompound(text string) float64 {
	return vaderAnalyzer.PolarityScores(text).Compound
}
