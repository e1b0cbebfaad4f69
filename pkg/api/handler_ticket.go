package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/shipdesk/shipdesk/pkg/services"
)

// listTicketsHandler handles GET /api/v1/tickets.
func (s *Server) listTicketsHandler(c *echo.Context) error {
	params := services.TicketListParams{
		Status: c.QueryParam("status"),
	}
	if v := c.QueryParam("escalated"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid escalated: must be true or false")
		}
		params.Escalated = &b
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			params.Limit = n
		}
	}

	tickets, err := s.tickets.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &TicketListResponse{Tickets: tickets, Count: len(tickets)})
}

// getTicketHandler handles GET /api/v1/tickets/:ticket_number.
func (s *Server) getTicketHandler(c *echo.Context) error {
	ticketNumber := c.Param("ticket_number")
	if ticketNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket number is required")
	}

	detail, err := s.tickets.Get(c.Request().Context(), ticketNumber)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// analyzeHandler handles POST /api/v1/tickets/:ticket_number/analyze.
func (s *Server) analyzeHandler(c *echo.Context) error {
	ticketNumber := c.Param("ticket_number")
	if ticketNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket number is required")
	}

	var req AnalyzeRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	result, err := s.analyze.Analyze(c.Request().Context(), ticketNumber, req.IgnoredMessageIDs, req.PreviewOnly)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
