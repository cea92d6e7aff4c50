package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taleweaver/pkg/schema"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "TaleWeaver Generation API",
		"status":  "ok",
	})
}

// GET /api/schema
func (s *Server) handleGetSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.RequestSchemas())
}
