package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

// ProfileHandler serves the account profile screens.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type updateProfileRequest struct {
	Name    string         `json:"name"  validate:"required"`
	Email   string         `json:"email" validate:"required,email"`
	Bio     string         `json:"bio"   validate:"max=500"`
	Phone   string         `json:"phone"`
	Address addressRequest `json:"address"`
}

// Get returns the caller's profile, falling back to identity defaults when
// nothing has been saved yet.
//
// @Summary      Get my profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update saves the caller's profile.
//
// @Summary      Update my profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Update(c.Request().Context(), ports.UpdateProfileInput{
		Username: identity.Username,
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		Phone:    req.Phone,
		Address: domain.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			Zip:     req.Address.Zip,
			Country: req.Address.Country,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
