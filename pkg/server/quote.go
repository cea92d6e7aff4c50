package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"taleweaver/pkg/prompt"
	"taleweaver/pkg/schema"
	"taleweaver/pkg/utils"
)

// POST /api/suggest-quote
func (s *Server) handlePostSuggest(c echo.Context) error {
	var req schema.QuoteSuggestionRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid JSON in /api/suggest-quote", "error", err)
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}
	if err := req.Validate(); err != nil {
		return rejectInvalid(c, err)
	}

	suggestions, err := s.infer(c, "suggest-quote", prompt.SuggestQuotes(req))
	if err != nil {
		log.Error("AI Quote Suggestion Error", "id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to generate quote suggestions."))
	}

	if n := len(utils.NonEmptyLines(suggestions)); n != prompt.QuoteCount {
		log.Debug("unexpected quote count", "id", requestID(c), "want", prompt.QuoteCount, "got", n)
	}

	return c.JSON(http.StatusOK, schema.QuoteSuggestionResponse{Success: true, Suggestions: suggestions})
}
