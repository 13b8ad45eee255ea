package handler

import (
	"time"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Shared response types ---

// identityResponse is the public shape of an authenticated identity.
// It deliberately mirrors the session payload the SPA keeps client side,
// so the same struct serves auth responses and GET /api/session.
type identityResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toIdentityResponse(identity *domain.Identity) *identityResponse {
	if identity == nil {
		return nil
	}
	return &identityResponse{
		ID:        identity.ID,
		Username:  identity.Username,
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      string(identity.Role),
		CreatedAt: identity.CreatedAt,
	}
}
