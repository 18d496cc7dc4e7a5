package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getSystem answers GET /data/system/:address.
func (s *Server) getSystem(c echo.Context) error {
	address, err := strconv.ParseUint(c.Param("address"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid system address")
	}

	system, err := s.galaxyService.LookupSystem(c.Request().Context(), address, editionFlag(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "system not found")
	}
	return c.JSON(http.StatusOK, system)
}
