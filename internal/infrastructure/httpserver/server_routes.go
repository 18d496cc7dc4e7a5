package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)
	s.echo.GET("/ping", s.ping)

	data := s.echo.Group("/data")
	data.GET("", s.dataRoot)
	data.GET("/commodity/:name", s.getCommodity)
	data.GET("/system/:address", s.getSystem)
}

func (s *Server) ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}

func (s *Server) dataRoot(c echo.Context) error {
	return c.String(http.StatusOK, "data")
}
