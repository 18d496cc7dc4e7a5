package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getCommodity answers GET /data/commodity/:name. The name is used exactly as
// provided, with no trimming or case folding, and the optional odyssey query
// parameter selects the content edition. Absent records and transient query
// failures both surface as 404.
func (s *Server) getCommodity(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "commodity name required")
	}

	commodity, err := s.marketService.LookupCommodity(c.Request().Context(), name, editionFlag(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "commodity not found")
	}
	return c.JSON(http.StatusOK, commodity)
}

// editionFlag reads the odyssey query parameter; absent or malformed values
// select the base edition.
func editionFlag(c echo.Context) bool {
	v, err := strconv.ParseBool(c.QueryParam("odyssey"))
	if err != nil {
		return false
	}
	return v
}
