package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

type stubAuthService struct {
	registerErr error
	loginToken  string
	loginUser   *domain.User
	loginErr    error

	registered []string
}

func (s *stubAuthService) Register(_ context.Context, email, _, _, _ string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.registered = append(s.registered, email)
	return &domain.User{ID: 1, Email: email}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, s.loginUser, nil
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret123","firstName":"Alice","lastName":"Smith"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "User registered successfully!" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
	if len(svc.registered) != 1 || svc.registered[0] != "alice@example.com" {
		t.Fatalf("service not called as expected: %v", svc.registered)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailTaken})

	c, _ := newContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret123","firstName":"Alice","lastName":"Smith"}`)

	if err := h.Register(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken to bubble up, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"secret123","firstName":"Alice","lastName":"Smith"}`},
		{"bad email", `{"email":"not-an-email","password":"secret123","firstName":"Alice","lastName":"Smith"}`},
		{"short password", `{"email":"alice@example.com","password":"12345","firstName":"Alice","lastName":"Smith"}`},
		{"short first name", `{"email":"alice@example.com","password":"secret123","firstName":"Al","lastName":"Smith"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{}
			h := NewAuthHandler(svc)

			c, rec := newContext(t, http.MethodPost, "/api/auth/register", tt.body)
			if err := h.Register(c); err != nil {
				t.Fatalf("validation failures render directly, got error %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if len(svc.registered) != 0 {
				t.Fatalf("service must not be called on invalid input")
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginToken: "signed.jwt.token",
		loginUser: &domain.User{
			ID:        7,
			Email:     "alice@example.com",
			FirstName: "Alice",
			LastName:  "Smith",
			Admin:     true,
		},
	})

	c, rec := newContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token     string `json:"token"`
		ID        int64  `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Admin     bool   `json:"isAdmin"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed.jwt.token" || resp.ID != 7 || resp.Username != "alice@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !resp.Admin {
		t.Fatalf("isAdmin flag should be set")
	}

	// The password hash must never appear on the wire.
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	for _, want := range []error{domain.ErrInvalidCredentials, domain.ErrTooManyAttempts} {
		h := NewAuthHandler(&stubAuthService{loginErr: want})

		c, _ := newContext(t, http.MethodPost, "/api/auth/login",
			`{"email":"alice@example.com","password":"wrong"}`)

		if err := h.Login(c); err != want {
			t.Fatalf("expected %v to bubble up, got %v", want, err)
		}
	}
}
