// Package server exposes the sentiment pipeline over HTTP.
package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/spacesedan/sentiment-api/config"
	"github.com/spacesedan/sentiment-api/internal/sentiment"
)

type Server struct {
	echo     *echo.Echo
	config   *config.Config
	pipeline *sentiment.Pipeline
}

func NewServer(cfg *config.Config, pipeline *sentiment.Pipeline) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		config:   cfg,
		pipeline: pipeline,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	return s.echo.Start(":" + s.config.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
