package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spacesedan/sentiment-api/internal/metrics"
	"github.com/spacesedan/sentiment-api/internal/models"
	"github.com/spacesedan/sentiment-api/internal/sentiment"
)

type analyzeRequest struct {
	// Pointer so a missing field is distinguishable from an empty string.
	Text *string `json:"text"`
}

type batchRequest struct {
	// Raw so a non-list value is distinguishable from a missing field.
	Texts json.RawMessage `json:"texts"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := s.bindJSON(c, &req); err != nil {
		return s.clientError(c, err.Error())
	}
	if req.Text == nil {
		return s.clientError(c, `No text provided. Please include "text" in the request body.`)
	}

	result, err := s.pipeline.Analyze(*req.Text)
	if err != nil {
		var verr *sentiment.ValidationError
		if errors.As(err, &verr) {
			return s.clientError(c, verr.Message)
		}
		return s.unexpectedError(c, err)
	}

	slog.Info("[API] Sentiment analysis successful",
		slog.String("sentiment", result.Sentiment),
		slog.Float64("combined_polarity", result.Combined),
		slog.Any("result", result))
	metrics.RequestsTotal.WithLabelValues(c.Path(), "success").Inc()
	metrics.TextsAnalyzed.WithLabelValues(result.Sentiment).Inc()

	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleAnalyzeBatch(c echo.Context) error {
	var req batchRequest
	if err := s.bindJSON(c, &req); err != nil {
		return s.clientError(c, err.Error())
	}

	items, err := decodeBatchItems(req.Texts)
	if err != nil {
		return s.clientError(c, err.Error())
	}

	results, err := s.pipeline.AnalyzeBatch(items)
	if err != nil {
		var verr *sentiment.ValidationError
		if errors.As(err, &verr) {
			return s.clientError(c, verr.Message)
		}
		return s.unexpectedError(c, err)
	}

	errored := 0
	for _, r := range results {
		if r.Error != nil {
			errored++
			continue
		}
		metrics.TextsAnalyzed.WithLabelValues(r.Result.Sentiment).Inc()
	}
	slog.Info("[API] Batch sentiment analysis finished",
		slog.Int("items", len(results)),
		slog.Int("errors", errored))
	metrics.RequestsTotal.WithLabelValues(c.Path(), "success").Inc()

	return c.JSON(http.StatusOK, models.BatchResponse{Results: results})
}

// bindJSON decodes the request body, insisting on a JSON content type first
// so the caller gets the specific error the boundary promises.
func (s *Server) bindJSON(c echo.Context, v any) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return errors.New("Content-Type must be application/json")
	}
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		return errors.New("Request body must be valid JSON.")
	}
	return nil
}

// decodeBatchItems turns the raw "texts" value into a generic slice. Missing
// and non-list values share one message; the shape failure happens before any
// item is processed.
func decodeBatchItems(raw json.RawMessage) ([]any, error) {
	missingErr := errors.New(`No texts provided. Please include "texts" as a list in the request body.`)
	if raw == nil || string(raw) == "null" {
		return nil, missingErr
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, missingErr
	}
	return items, nil
}

func (s *Server) clientError(c echo.Context, message string) error {
	slog.Warn("[API] Request rejected",
		slog.String("path", c.Path()),
		slog.String("reason", message))
	metrics.RequestsTotal.WithLabelValues(c.Path(), "client_error").Inc()
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: message})
}

func (s *Server) unexpectedError(c echo.Context, err error) error {
	slog.Error("[API] Unexpected error during sentiment analysis",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	metrics.RequestsTotal.WithLabelValues(c.Path(), "error").Inc()
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "An unexpected error occurred: " + err.Error(),
	})
}
