package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiment-api/config"
	"github.com/spacesedan/sentiment-api/internal/models"
	"github.com/spacesedan/sentiment-api/internal/sentiment"
)

// stubScorer returns fixed scores regardless of input.
type stubScorer struct {
	polarity     float64
	subjectivity float64
	compound     float64
}

func (s stubScorer) AnalyzePolarity(string) (float64, float64) {
	return s.polarity, s.subjectivity
}

func (s stubScorer) AnalyzeCompound(string) float64 {
	return s.compound
}

func newTestServer(scorer sentiment.Scorer) *Server {
	cfg := &config.Config{AppEnv: "test", Port: "0", RateLimitEnabled: false}
	return NewServer(cfg, sentiment.NewPipeline(scorer))
}

func postJSON(s *Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHealth(t *testing.T) {
	s := newTestServer(stubScorer{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "Sentiment Analysis API is running", body.Message)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(stubScorer{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyzeNegativeText(t *testing.T) {
	// Real analyzers: strongly negative lexical content must land in the
	// negative bucket.
	s := newTestServer(sentiment.GetScorer())

	rec := postJSON(s, "/analyze-sentiment", `{"text": "I hate this product!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.SentimentResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, "I hate this product!", result.OriginalText)
	assert.Equal(t, "I hate this product", result.CleanedText)
	assert.Equal(t, "negative", result.Sentiment)
	assert.Less(t, result.Combined, -0.1)
	assert.Negative(t, result.Polarity)
	assert.Negative(t, result.Compound)
}

func TestAnalyzePositiveText(t *testing.T) {
	s := newTestServer(sentiment.GetScorer())

	rec := postJSON(s, "/analyze-sentiment", `{"text": "This is absolutely wonderful, I love it!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.SentimentResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "positive", result.Sentiment)
	assert.Greater(t, result.Combined, 0.1)
}

func TestAnalyzeValidationErrors(t *testing.T) {
	s := newTestServer(stubScorer{})

	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "missing text field",
			body:      `{}`,
			wantError: `No text provided. Please include "text" in the request body.`,
		},
		{
			name:      "empty text",
			body:      `{"text": ""}`,
			wantError: "Text cannot be empty.",
		},
		{
			name:      "whitespace only",
			body:      `{"text": "   "}`,
			wantError: "Text cannot be empty.",
		},
		{
			name:      "text too long",
			body:      fmt.Sprintf(`{"text": %q}`, strings.Repeat("a", 1001)),
			wantError: "Text is too long. Maximum length is 1000 characters.",
		},
		{
			name:      "cleans to empty",
			body:      `{"text": "@user #hashtag http://x.com !!!"}`,
			wantError: "Text is empty after cleaning.",
		},
		{
			name:      "malformed json",
			body:      `{"text": `,
			wantError: "Request body must be valid JSON.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(s, "/analyze-sentiment", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}

func TestAnalyzeRequiresJSONContentType(t *testing.T) {
	s := newTestServer(stubScorer{})

	req := httptest.NewRequest(http.MethodPost, "/analyze-sentiment", strings.NewReader("text=hi"))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Content-Type must be application/json", decodeError(t, rec))
}

func TestBatchValidationErrors(t *testing.T) {
	s := newTestServer(stubScorer{})

	oversized := `{"texts": [` + strings.Repeat(`"ok text", `, 10) + `"one too many"]}`

	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "missing texts field",
			body:      `{}`,
			wantError: `No texts provided. Please include "texts" as a list in the request body.`,
		},
		{
			name:      "texts is not a list",
			body:      `{"texts": "just a string"}`,
			wantError: `No texts provided. Please include "texts" as a list in the request body.`,
		},
		{
			name:      "texts is null",
			body:      `{"texts": null}`,
			wantError: `No texts provided. Please include "texts" as a list in the request body.`,
		},
		{
			name:      "eleven items",
			body:      oversized,
			wantError: "Too many texts. Maximum batch size is 10.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(s, "/analyze-sentiment-batch", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}

func TestBatchMixedItems(t *testing.T) {
	s := newTestServer(sentiment.GetScorer())

	rec := postJSON(s, "/analyze-sentiment-batch", `{"texts": ["I love this!", 42]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)

	assert.Equal(t, "positive", body.Results[0]["sentiment"])
	assert.Equal(t, "I love this!", body.Results[0]["original_text"])

	assert.Equal(t, "42", body.Results[1]["text"])
	assert.Equal(t, "Input text must be a string", body.Results[1]["error"])
	assert.NotContains(t, body.Results[1], "sentiment")
}

func TestBatchEmptyList(t *testing.T) {
	s := newTestServer(stubScorer{})

	rec := postJSON(s, "/analyze-sentiment-batch", `{"texts": []}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Results)
}

func TestBatchPreservesOrder(t *testing.T) {
	s := newTestServer(stubScorer{polarity: 0.5, compound: 0.5})

	rec := postJSON(s, "/analyze-sentiment-batch",
		`{"texts": ["first text", "", "third text"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 3)

	assert.Equal(t, "first text", body.Results[0]["original_text"])
	assert.Equal(t, "Text cannot be empty.", body.Results[1]["error"])
	assert.Equal(t, "third text", body.Results[2]["original_text"])
}

func TestAnalyzeRateLimited(t *testing.T) {
	cfg := &config.Config{AppEnv: "test", Port: "0", RateLimitEnabled: true}
	s := NewServer(cfg, sentiment.NewPipeline(stubScorer{polarity: 0.5, compound: 0.5}))

	for i := 0; i < analyzePerMinute; i++ {
		rec := postJSON(s, "/analyze-sentiment", `{"text": "still within allowance"}`)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := postJSON(s, "/analyze-sentiment", `{"text": "over the allowance"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Rate limit exceeded. Try again later.", decodeError(t, rec))
}

func TestBatchRateLimited(t *testing.T) {
	cfg := &config.Config{AppEnv: "test", Port: "0", RateLimitEnabled: true}
	s := NewServer(cfg, sentiment.NewPipeline(stubScorer{}))

	for i := 0; i < batchPerMinute; i++ {
		rec := postJSON(s, "/analyze-sentiment-batch", `{"texts": []}`)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := postJSON(s, "/analyze-sentiment-batch", `{"texts": []}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
