package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spacesedan/sentiment-api/internal/models"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Message: "Sentiment Analysis API is running",
	})
}
