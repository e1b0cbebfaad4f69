package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listDecisionsHandler handles GET /api/v1/ai-decisions.
func (s *Server) listDecisionsHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	decisions, err := s.decisions.List(c.Request().Context(), c.QueryParam("ticket"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &DecisionListResponse{Decisions: decisions, Count: len(decisions)})
}

// getDecisionHandler handles GET /api/v1/ai-decisions/:id.
func (s *Server) getDecisionHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "decision id is required")
	}

	d, err := s.decisions.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, d)
}

// feedbackHandler handles POST /api/v1/ai-decisions/:id/feedback.
func (s *Server) feedbackHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "decision id is required")
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	d, err := s.decisions.Feedback(c.Request().Context(), id, extractReviewer(c), req.Feedback, req.Notes)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, d)
}
