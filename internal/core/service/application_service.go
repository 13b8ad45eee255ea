package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

const maxBackgroundWords = 200

var ErrInvalidApplication = errors.New("invalid seller application")

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	phonePattern = regexp.MustCompile(`^09\d{9}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@(gmail\.com|yahoo\.com)$`)
)

// ApplicationService handles the become-a-seller flow. Submissions land in
// PENDING state and wait for admin review; one application per username.
type ApplicationService struct {
	repo   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, logger: logger}
}

func (s *ApplicationService) Submit(ctx context.Context, input ports.SubmitApplicationInput) (*domain.SellerApplication, error) {
	if err := validateApplication(input); err != nil {
		return nil, err
	}

	app := &domain.SellerApplication{
		Username:    input.Username,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		Category:    input.Category,
		Background:  input.Background,
		Status:      domain.ApplicationPending,
		SubmittedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("category", created.Category).Msg("seller application submitted")
	return created, nil
}

// Status returns the caller's application, or ErrApplicationNotFound when
// none was ever submitted.
func (s *ApplicationService) Status(ctx context.Context, username string) (*domain.SellerApplication, error) {
	return s.repo.FindByUsername(ctx, username)
}

// validateApplication applies the form rules: letters-only names, an
// 09-prefixed 11-digit phone number, a gmail/yahoo address, a known category,
// a background capped at 200 words, and accepted terms.
func validateApplication(input ports.SubmitApplicationInput) error {
	switch {
	case input.Username == "":
		return fmt.Errorf("%w: username is required", ErrInvalidApplication)
	case !namePattern.MatchString(input.FirstName):
		return fmt.Errorf("%w: first name must contain only letters", ErrInvalidApplication)
	case !namePattern.MatchString(input.LastName):
		return fmt.Errorf("%w: last name must contain only letters", ErrInvalidApplication)
	case !phonePattern.MatchString(input.Phone):
		return fmt.Errorf("%w: phone number must be exactly 11 digits and start with 09", ErrInvalidApplication)
	case !emailPattern.MatchString(input.Email):
		return fmt.Errorf("%w: email must be a registered gmail.com or yahoo.com address", ErrInvalidApplication)
	case !validCategory(input.Category):
		return fmt.Errorf("%w: unknown product category %q", ErrInvalidApplication, input.Category)
	case wordCount(input.Background) == 0:
		return fmt.Errorf("%w: background is required", ErrInvalidApplication)
	case wordCount(input.Background) > maxBackgroundWords:
		return fmt.Errorf("%w: background must not exceed %d words", ErrInvalidApplication, maxBackgroundWords)
	case !input.AgreeTerms:
		return fmt.Errorf("%w: terms and conditions must be accepted", ErrInvalidApplication)
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range domain.SellerCategories {
		if c == category {
			return true
		}
	}
	return false
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
