package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// requireSession rejects requests while nobody is logged in
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ok, err := s.sessions.IsAuthenticated(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		return next(c)
	}
}
