package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

func TestDecide(t *testing.T) {
	member := &domain.User{ID: 1, Email: "alice@example.com"}
	admin := &domain.User{ID: 2, Email: "root@example.com", Admin: true}

	tests := []struct {
		name      string
		principal *domain.User
		req       Requirement
		want      error
	}{
		{"anonymous authenticated", nil, Authenticated(), domain.ErrUnauthenticated},
		{"anonymous admin", nil, Admin(), domain.ErrUnauthenticated},
		{"anonymous owner", nil, Owner("alice@example.com"), domain.ErrUnauthenticated},
		{"member authenticated", member, Authenticated(), nil},
		{"member admin", member, Admin(), domain.ErrForbidden},
		{"admin admin", admin, Admin(), nil},
		{"owner matches", member, Owner("alice@example.com"), nil},
		{"owner mismatch", member, Owner("bob@example.com"), domain.ErrForbidden},
		// The admin flag grants nothing on ownership rules.
		{"admin not owner", admin, Owner("alice@example.com"), domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.principal, tt.req); got != tt.want {
				t.Fatalf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	admin := &domain.User{ID: 2, Email: "root@example.com", Admin: true}

	run := func(principal *domain.User, req Requirement) (int, error) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		if principal != nil {
			SetPrincipal(c, principal)
		}
		called := http.StatusTeapot
		err := Require(req)(func(c echo.Context) error {
			called = http.StatusOK
			return nil
		})(c)
		return called, err
	}

	if status, err := run(admin, Admin()); err != nil || status != http.StatusOK {
		t.Fatalf("admin should pass the admin gate, status=%d err=%v", status, err)
	}
	if _, err := run(nil, Authenticated()); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := run(&domain.User{ID: 1, Email: "alice@example.com"}, Admin()); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
