package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/api/metrics"
	"github.com/palette/auction-gateway/internal/core/ports"
)

func TestClient_Login_Success(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true, "statusCode": 200, "message": "Successfully logged in.",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	ok, err := client.Login(context.Background(), "jane", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected success")
	}
	if gotBody["username"] != "jane" || gotBody["password"] != "pw" {
		t.Fatalf("unexpected payload: %v", gotBody)
	}
}

func TestClient_ObservesRequestDuration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": true, "statusCode": 200})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := client.Login(context.Background(), "jane", "pw"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if got := testutil.CollectAndCount(metrics.BackendRequestDuration); got < 1 {
		t.Fatalf("expected login duration to be observed, got %d series", got)
	}
}

func TestClient_Login_RejectedStatusField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "statusCode": 200})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	ok, err := client.Login(context.Background(), "jane", "pw")
	if err != nil || ok {
		t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
	}
}

func TestClient_Login_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	ok, err := client.Login(context.Background(), "jane", "pw")
	if err != nil || ok {
		t.Fatalf("non-2xx must be (false, nil), got (%v, %v)", ok, err)
	}
}

func TestClient_Login_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := client.Login(context.Background(), "jane", "pw"); err == nil {
		t.Fatalf("expected decoding error")
	}
}

func TestClient_Login_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := client.Login(context.Background(), "jane", "pw"); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestClient_CreateUser(t *testing.T) {
	var gotBody map[string]string
	status := http.StatusCreated
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(status)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	input := ports.CreateUserInput{
		Username: "bob", FirstName: "Bob", LastName: "Smith",
		Email: "bob@x.com", Password: "pw", Role: "CUSTOMER",
	}
	if err := client.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if gotBody["firstName"] != "Bob" || gotBody["lastName"] != "Smith" || gotBody["role"] != "CUSTOMER" {
		t.Fatalf("unexpected payload: %v", gotBody)
	}

	status = http.StatusConflict
	if err := client.CreateUser(context.Background(), input); err == nil {
		t.Fatalf("expected error on 409")
	}
}
