package ports

import "context"

// CreateUserInput is the registration payload sent to the marketplace backend.
type CreateUserInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// AuthBackend is the outbound client for the two user endpoints the gateway
// invokes on the remote marketplace backend. Login reports whether the
// backend accepted the credentials: a non-2xx response or a response body
// lacking the success indicator is (false, nil); only transport or decoding
// failures surface as errors.
type AuthBackend interface {
	Login(ctx context.Context, username, password string) (bool, error)
	CreateUser(ctx context.Context, input CreateUserInput) error
}
