package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
	"github.com/palette/auction-gateway/internal/core/service"
)

// ApplicationHandler serves the become-a-seller flow for customers.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type submitApplicationRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name"  validate:"required"`
	Email      string `json:"email"      validate:"required"`
	Phone      string `json:"phone"      validate:"required"`
	Category   string `json:"category"   validate:"required"`
	Background string `json:"background" validate:"required"`
	AgreeTerms bool   `json:"agree_terms"`
}

type applicationResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	SubmittedAt string `json:"submitted_at"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

func toApplicationResponse(app *domain.SellerApplication) applicationResponse {
	return applicationResponse{
		ID:          app.ID,
		Status:      string(app.Status),
		Category:    app.Category,
		SubmittedAt: app.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Categories lists the categories a seller can apply under.
//
// @Summary      Seller categories
// @Tags         seller
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/seller/categories [get]
func (h *ApplicationHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{Categories: domain.SellerCategories})
}

// Submit files a seller application for the authenticated customer.
//
// @Summary      Apply to become a seller
// @Tags         seller
// @Accept       json
// @Produce      json
// @Param        body  body      submitApplicationRequest  true  "Application form"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/seller/apply [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		Username:   identity.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Category:   req.Category,
		Background: req.Background,
		AgreeTerms: req.AgreeTerms,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidApplication) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, toApplicationResponse(app))
}

// Status returns the caller's application, if any.
//
// @Summary      Seller application status
// @Tags         seller
// @Produce      json
// @Success      200  {object}  applicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/seller/apply/status [get]
func (h *ApplicationHandler) Status(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	app, err := h.service.Status(c.Request().Context(), identity.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(app))
}
