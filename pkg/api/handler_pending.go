package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/shipdesk/shipdesk/pkg/models"
)

// listPendingHandler handles GET /api/v1/messages/pending.
func (s *Server) listPendingHandler(c *echo.Context) error {
	params := models.PendingListParams{
		Status: c.QueryParam("status"),
		Kind:   c.QueryParam("kind"),
		Ticket: c.QueryParam("ticket"),
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			params.Limit = n
		}
	}

	msgs, err := s.pending.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &PendingListResponse{Messages: msgs, Count: len(msgs)})
}

// getPendingHandler handles GET /api/v1/messages/pending/:id.
func (s *Server) getPendingHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message id is required")
	}
	ctx := c.Request().Context()

	pm, err := s.pending.Get(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &PendingDetailResponse{Message: pm}
	if detail, err := s.tickets.Get(ctx, pm.TicketNumber); err == nil {
		t := detail.Ticket
		resp.Ticket = &TicketContext{
			TicketNumber:  t.ID,
			Status:        string(t.Status),
			CustomerEmail: t.CustomerEmail,
			Language:      t.Language,
			Escalated:     t.Escalated,
		}
		if t.OrderNumber != nil {
			resp.Ticket.OrderNumber = *t.OrderNumber
		}
	}
	if pm.DecisionID != "" {
		if d, err := s.decisions.Get(ctx, pm.DecisionID); err == nil {
			resp.Decision = d
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// approvePendingHandler handles POST /api/v1/messages/pending/:id/approve.
func (s *Server) approvePendingHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message id is required")
	}

	var req ApproveRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	pm, err := s.pending.Approve(c.Request().Context(), id, extractReviewer(c), req.Edits)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pm)
}

// rejectPendingHandler handles POST /api/v1/messages/pending/:id/reject.
func (s *Server) rejectPendingHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message id is required")
	}

	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	pm, err := s.pending.Reject(c.Request().Context(), id, extractReviewer(c), req.Reason)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pm)
}

// retryPendingHandler handles POST /api/v1/messages/pending/:id/retry.
func (s *Server) retryPendingHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message id is required")
	}

	pm, err := s.pending.Retry(c.Request().Context(), id, extractReviewer(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pm)
}
