package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"taleweaver/pkg/prompt"
	"taleweaver/pkg/schema"
	"taleweaver/pkg/utils"
)

// POST /api/generate
func (s *Server) handlePostGenerate(c echo.Context) error {
	var req schema.AlternateUniverseRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid JSON in /api/generate", "error", err)
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}
	if err := req.Validate(); err != nil {
		return rejectInvalid(c, err)
	}

	log.Info("alternate universe requested", "id", requestID(c), "book", req.BookTitle, "author", req.AuthorName)
	story, err := s.infer(c, "generate", prompt.AlternateUniverse(req))
	if err != nil {
		log.Error("AI Generation Error", "id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to generate story from AI."))
	}

	return c.JSON(http.StatusOK, schema.GenerateResponse{Success: true, GeneratedStory: story})
}
