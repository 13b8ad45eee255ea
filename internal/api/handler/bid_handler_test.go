package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/service"
	"github.com/palette/auction-gateway/internal/infrastructure/db/memory"
)

func newBidHandler() *BidHandler {
	return NewBidHandler(service.NewBidService(memory.NewBidRepository(), testLogger()))
}

func TestBidHandler_List(t *testing.T) {
	h := newBidHandler()

	c, rec := newTestContext(t, http.MethodGet, "/api/bids", "")
	withIdentity(c, &domain.Identity{Username: "jane", Role: domain.RoleCustomer})
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []bidResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) == 0 {
		t.Fatal("expected seeded bids")
	}
}

func TestBidHandler_List_Anonymous(t *testing.T) {
	h := newBidHandler()

	c, _ := newTestContext(t, http.MethodGet, "/api/bids", "")
	err := h.List(c)
	if err == nil {
		t.Fatal("expected 401 for anonymous caller")
	}
	if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestBidHandler_Pay(t *testing.T) {
	h := newBidHandler()
	identity := &domain.Identity{Username: "jane", Role: domain.RoleCustomer}

	// Find an unpaid bid from the seeded data first.
	c, rec := newTestContext(t, http.MethodGet, "/api/bids", "")
	withIdentity(c, identity)
	if err := h.List(c); err != nil {
		t.Fatalf("list error: %v", err)
	}
	var list struct {
		Data []bidResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	var unpaidID string
	for _, bid := range list.Data {
		if bid.PaymentStatus == string(domain.PaymentUnpaid) {
			unpaidID = bid.ID
			break
		}
	}
	if unpaidID == "" {
		t.Fatal("expected an unpaid seeded bid")
	}

	c, rec = newTestContext(t, http.MethodPost, "/api/bids/"+unpaidID+"/pay", `{"method":"gcash"}`)
	withIdentity(c, identity)
	c.SetParamNames("id")
	c.SetParamValues(unpaidID)
	if err := h.Pay(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var paid bidResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &paid); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if paid.PaymentStatus != string(domain.PaymentComplete) || paid.Payment == nil {
		t.Fatalf("expected completed payment, got %+v", paid)
	}
	if paid.Payment.Method != "gcash" {
		t.Fatalf("expected gcash payment, got %+v", paid.Payment)
	}
	if paid.Payment.PaidAt == nil || paid.Payment.PaidAt.IsZero() {
		t.Fatalf("expected a settlement timestamp, got %+v", paid.Payment)
	}
}

func TestBidHandler_Pay_UnknownMethod(t *testing.T) {
	h := newBidHandler()

	c, _ := newTestContext(t, http.MethodPost, "/api/bids/x/pay", `{"method":"barter"}`)
	withIdentity(c, &domain.Identity{Username: "jane", Role: domain.RoleCustomer})
	c.SetParamNames("id")
	c.SetParamValues("x")

	err := h.Pay(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
