package models

import "encoding/json"

// SentimentResult is the full per-text analysis payload returned to callers.
type SentimentResult struct {
	OriginalText string  `json:"original_text"`
	CleanedText  string  `json:"cleaned_text"`
	Sentiment    string  `json:"sentiment"`
	Polarity     float64 `json:"textblob_polarity"`
	Subjectivity float64 `json:"textblob_subjectivity"`
	Compound     float64 `json:"vader_compound"`
	Combined     float64 `json:"combined_polarity"`
}

// BatchItemError echoes the offending input alongside the reason it was
// rejected, without failing the rest of the batch.
type BatchItemError struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

// BatchItem holds exactly one of a result or an inline error record.
// Output order matches input order index-for-index.
type BatchItem struct {
	Result *SentimentResult
	Error  *BatchItemError
}

func (b BatchItem) MarshalJSON() ([]byte, error) {
	if b.Error != nil {
		return json.Marshal(b.Error)
	}
	return json.Marshal(b.Result)
}

type BatchResponse struct {
	Results []BatchItem `json:"results"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
