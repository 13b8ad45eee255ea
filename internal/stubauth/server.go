// Package stubauth is a development stand-in for the remote marketplace
// backend. It implements the two user endpoints the gateway calls, with
// bcrypt-hashed credentials and a seeded account per role.
package stubauth

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash []byte
	Role         string
}

// Server holds the in-memory user table.
type Server struct {
	mu     sync.Mutex
	users  map[string]user
	logger zerolog.Logger
}

// New seeds one account per role, all with the password "password".
func New(logger zerolog.Logger) *Server {
	s := &Server{
		users:  make(map[string]user),
		logger: logger,
	}
	for _, seed := range []user{
		{Username: "admin", FirstName: "Ada", LastName: "Reyes", Email: "admin@example.com", Role: "ADMIN"},
		{Username: "seller", FirstName: "Sol", LastName: "Mercado", Email: "seller@example.com", Role: "SELLER"},
		{Username: "customer", FirstName: "Cai", LastName: "Lim", Email: "customer@example.com", Role: "CUSTOMER"},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			panic("stubauth: seed hash: " + err.Error())
		}
		seed.PasswordHash = hash
		s.users[seed.Username] = seed
	}
	return s
}

// Router returns the Echo instance serving the stub endpoints.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())

	e.POST("/api/user/login", s.login)
	e.POST("/api/user", s.createUser)
	return e
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// ackResponse mirrors the production backend's acknowledgement envelope.
type ackResponse struct {
	Status     bool   `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ackResponse{
			Status: false, StatusCode: http.StatusBadRequest, Message: "invalid payload",
		})
	}

	s.mu.Lock()
	account, ok := s.users[req.Username]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Password)) != nil {
		s.logger.Debug().Str("username", req.Username).Msg("login rejected")
		return c.JSON(http.StatusUnauthorized, ackResponse{
			Status: false, StatusCode: http.StatusUnauthorized, Message: "Invalid username or password",
		})
	}

	return c.JSON(http.StatusOK, ackResponse{
		Status: true, StatusCode: http.StatusOK, Message: "Login successful",
	})
}

func (s *Server) createUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ackResponse{
			Status: false, StatusCode: http.StatusBadRequest, Message: "invalid payload",
		})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ackResponse{
			Status: false, StatusCode: http.StatusBadRequest, Message: "username and password are required",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ackResponse{
			Status: false, StatusCode: http.StatusInternalServerError, Message: "could not store credentials",
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Username]; exists {
		return c.JSON(http.StatusConflict, ackResponse{
			Status: false, StatusCode: http.StatusConflict, Message: "username already taken",
		})
	}
	s.users[req.Username] = user{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	return c.JSON(http.StatusCreated, ackResponse{
		Status: true, StatusCode: http.StatusCreated, Message: "User created",
	})
}
