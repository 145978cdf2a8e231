// Package sentiment implements the analysis pipeline: input validation,
// text cleaning, dual-model scoring and classification.
package sentiment

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/sentiment-api/internal/models"
)

const (
	// MaxTextLength is the per-text cap in characters.
	MaxTextLength = 1000
	// MaxBatchSize is the per-call cap on batch items.
	MaxBatchSize = 10
)

// ValidationError is a client-input failure carrying the caller-facing
// message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrEmptyText          = &ValidationError{Message: "Text cannot be empty."}
	ErrTextTooLong        = &ValidationError{Message: "Text is too long. Maximum length is 1000 characters."}
	ErrEmptyAfterCleaning = &ValidationError{Message: "Text is empty after cleaning."}
	ErrNotAString         = &ValidationError{Message: "Input text must be a string"}
	ErrTooManyTexts       = &ValidationError{Message: "Too many texts. Maximum batch size is 10."}
)

// Pipeline runs the cleaning, scoring and classification stages against a
// Scorer. It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	scorer Scorer
}

func NewPipeline(scorer Scorer) *Pipeline {
	return &Pipeline{scorer: scorer}
}

// Analyze validates a single text, cleans it and scores it with both models.
// Validation failures come back as *ValidationError; the scoring stages are
// total over valid input.
func (p *Pipeline) Analyze(text string) (*models.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	// The cap counts characters, not bytes; multibyte text up to 1000
	// characters is valid.
	if utf8.RuneCountInString(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	cleaned := Clean(text)
	if cleaned == "" {
		return nil, ErrEmptyAfterCleaning
	}

	polarity, subjectivity := p.scorer.AnalyzePolarity(cleaned)
	compound := p.scorer.AnalyzeCompound(cleaned)
	combined, label := Classify(polarity, compound)

	return &models.SentimentResult{
		OriginalText: text,
		CleanedText:  cleaned,
		Sentiment:    string(label),
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Compound:     compound,
		Combined:     combined,
	}, nil
}

// AnalyzeBatch applies Analyze to each item in order. One item's failure
// never aborts the batch; the offending slot carries an inline error record
// instead. The whole call fails only when the batch exceeds MaxBatchSize.
func (p *Pipeline) AnalyzeBatch(items []any) ([]models.BatchItem, error) {
	if len(items) > MaxBatchSize {
		return nil, ErrTooManyTexts
	}

	results := make([]models.BatchItem, 0, len(items))
	for _, item := range items {
		text, ok := item.(string)
		if !ok {
			results = append(results, models.BatchItem{Error: &models.BatchItemError{
				Text:  fmt.Sprintf("%v", item),
				Error: ErrNotAString.Message,
			}})
			continue
		}

		result, err := p.Analyze(text)
		if err != nil {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				return nil, err
			}
			results = append(results, models.BatchItem{Error: &models.BatchItemError{
				Text:  text,
				Error: verr.Message,
			}})
			continue
		}

		results = append(results, models.BatchItem{Result: result})
	}

	return results, nil
}
