package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/core/ports"
)

// DashboardHandler serves the admin and seller dashboard aggregates.
// Role enforcement happens in the routing layer; handlers only need the
// identity for seller-scoped queries.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Admin returns the platform-wide counters.
//
// @Summary      Admin dashboard overview
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  domain.AdminOverview
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	overview, err := h.service.AdminOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Seller returns the caller's listings, notifications and market data.
//
// @Summary      Seller dashboard overview
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  domain.SellerOverview
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/seller/dashboard [get]
func (h *DashboardHandler) Seller(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	overview, err := h.service.SellerOverview(c.Request().Context(), identity.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// CancelListing withdraws one of the caller's pending or active listings.
//
// @Summary      Cancel a listing
// @Tags         dashboards
// @Param        id  path  string  true  "Listing ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/seller/items/{id} [delete]
func (h *DashboardHandler) CancelListing(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.CancelListing(c.Request().Context(), identity.Username, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
