package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/shipdesk/shipdesk/pkg/services"
)

// listSuppliersHandler handles GET /api/v1/suppliers.
func (s *Server) listSuppliersHandler(c *echo.Context) error {
	suppliers, err := s.directory.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SupplierListResponse{Suppliers: suppliers, Count: len(suppliers)})
}

// upsertSupplierHandler handles PUT /api/v1/suppliers.
func (s *Server) upsertSupplierHandler(c *echo.Context) error {
	var req services.SupplierUpsert
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sup, err := s.directory.Upsert(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sup)
}
