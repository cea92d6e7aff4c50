package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"taleweaver/pkg/prompt"
	"taleweaver/pkg/schema"
	"taleweaver/pkg/utils"
)

// POST /api/rewrite
func (s *Server) handlePostRewrite(c echo.Context) error {
	var req schema.RewriteRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid JSON in /api/rewrite", "error", err)
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}
	if err := req.Validate(); err != nil {
		return rejectInvalid(c, err)
	}

	story, err := s.infer(c, "rewrite", prompt.Rewrite(req))
	if err != nil {
		log.Error("AI Error", "id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to generate content from AI."))
	}

	return c.JSON(http.StatusOK, schema.RewriteResponse{Success: true, RewrittenStory: story})
}
