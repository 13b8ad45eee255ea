package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

type stubApplicationRepo struct {
	apps map[string]*domain.SellerApplication
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.SellerApplication)}
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.SellerApplication) (*domain.SellerApplication, error) {
	if _, exists := r.apps[app.Username]; exists {
		return nil, domain.ErrApplicationExists
	}
	clone := *app
	clone.ID = "app-" + app.Username
	r.apps[app.Username] = &clone
	return &clone, nil
}

func (r *stubApplicationRepo) FindByUsername(_ context.Context, username string) (*domain.SellerApplication, error) {
	app, ok := r.apps[username]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

func validApplication() ports.SubmitApplicationInput {
	return ports.SubmitApplicationInput{
		Username:   "jane",
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane.doe@gmail.com",
		Phone:      "09171234567",
		Category:   "Paintings",
		Background: "I have collected and restored oil paintings for ten years.",
		AgreeTerms: true,
	}
}

func TestApplicationService_Submit_Success(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), zerolog.Nop())

	app, err := svc.Submit(context.Background(), validApplication())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("new applications must be PENDING, got %s", app.Status)
	}
	if app.ID == "" {
		t.Fatalf("expected repository-assigned id")
	}
}

func TestApplicationService_Submit_ValidationRules(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), zerolog.Nop())

	mutate := []struct {
		name string
		fn   func(*ports.SubmitApplicationInput)
	}{
		{"digits in first name", func(in *ports.SubmitApplicationInput) { in.FirstName = "J4ne" }},
		{"digits in last name", func(in *ports.SubmitApplicationInput) { in.LastName = "D0e" }},
		{"phone too short", func(in *ports.SubmitApplicationInput) { in.Phone = "0917123456" }},
		{"phone wrong prefix", func(in *ports.SubmitApplicationInput) { in.Phone = "08171234567" }},
		{"phone with letters", func(in *ports.SubmitApplicationInput) { in.Phone = "0917123456a" }},
		{"non gmail/yahoo email", func(in *ports.SubmitApplicationInput) { in.Email = "jane@mail.com" }},
		{"unknown category", func(in *ports.SubmitApplicationInput) { in.Category = "Cars" }},
		{"empty background", func(in *ports.SubmitApplicationInput) { in.Background = "   " }},
		{"terms not accepted", func(in *ports.SubmitApplicationInput) { in.AgreeTerms = false }},
		{"missing username", func(in *ports.SubmitApplicationInput) { in.Username = "" }},
	}

	for _, tc := range mutate {
		input := validApplication()
		tc.fn(&input)
		if _, err := svc.Submit(context.Background(), input); !errors.Is(err, ErrInvalidApplication) {
			t.Fatalf("%s: expected ErrInvalidApplication, got %v", tc.name, err)
		}
	}
}

func TestApplicationService_Submit_BackgroundWordCap(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), zerolog.Nop())

	input := validApplication()
	for i := 0; i < 201; i++ {
		input.Background += " word"
	}
	if _, err := svc.Submit(context.Background(), input); !errors.Is(err, ErrInvalidApplication) {
		t.Fatalf("expected word cap violation, got %v", err)
	}
}

func TestApplicationService_Submit_Duplicate(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validApplication()); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.Submit(context.Background(), validApplication()); !errors.Is(err, domain.ErrApplicationExists) {
		t.Fatalf("expected ErrApplicationExists, got %v", err)
	}
}

func TestApplicationService_Status(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), zerolog.Nop())

	if _, err := svc.Status(context.Background(), "ghost"); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}

	if _, err := svc.Submit(context.Background(), validApplication()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	app, err := svc.Status(context.Background(), "jane")
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("unexpected status: %s", app.Status)
	}
}
