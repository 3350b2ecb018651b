package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ucasl/reservas-web/internal/api/handler"
	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
)

type routerAuthStub struct{}

func (routerAuthStub) Login(context.Context, domain.Credentials) (*ports.LoginOutcome, error) {
	return nil, domain.ErrInvalidCredentials
}

func (routerAuthStub) Resolve(_ context.Context, cookieValue string) (*ports.ResolvedSession, error) {
	switch cookieValue {
	case "admin":
		return &ports.ResolvedSession{SessionID: "s1", Token: "t", Session: domain.Session{
			Authenticated: true, User: &domain.User{ID: 1, Role: domain.RoleAdmin},
		}}, nil
	case "aluno":
		return &ports.ResolvedSession{SessionID: "s2", Token: "t", Session: domain.Session{
			Authenticated: true, User: &domain.User{ID: 2, Role: "ALUNO"},
		}}, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (routerAuthStub) Logout(context.Context, string) error { return nil }

type routerFormStub struct{}

func (routerFormStub) NewForm() ports.ReservationForm { return nil }

type pingStub struct{ err error }

func (p pingStub) Ping(context.Context) error { return p.err }

// NewRouter registers the HTTP metrics collectors, so the router is built once
// for the whole test.
func TestRouter(t *testing.T) {
	e := NewRouter(Dependencies{
		Auth:         routerAuthStub{},
		Forms:        routerFormStub{},
		SessionStore: pingStub{err: errors.New("connection refused")},
		Cookie:       handler.CookieConfig{Name: "sid"},
		Roles:        []string{domain.RoleAdmin, domain.RoleProfessor},
		Log:          zerolog.Nop(),
	})

	do := func(method, target, cookie, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "sid", Value: cookie})
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("anonymous visitor is sent to login", func(t *testing.T) {
		rec := do(http.MethodGet, "/reservas/novo", "", "")
		if rec.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", rec.Code)
		}
		if got := rec.Header().Get("Location"); got != "/login?from=%2Freservas%2Fnovo" {
			t.Fatalf("unexpected Location %q", got)
		}
	})

	t.Run("wrong role is sent home", func(t *testing.T) {
		rec := do(http.MethodPost, "/reservas/horario", "aluno", `{"value":"10:00"}`)
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
			t.Fatalf("expected redirect home, got %d %q", rec.Code, rec.Header().Get("Location"))
		}
	})

	t.Run("allowed role reaches the handler", func(t *testing.T) {
		rec := do(http.MethodPost, "/reservas/horario", "admin", `{"value":"10:00"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("login failure uses the error envelope", func(t *testing.T) {
		rec := do(http.MethodPost, "/auth/login", "", `{"identifier":"a","secret":"b"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error":"Credenciais inválidas"`) || !strings.Contains(rec.Body.String(), `"kind":"auth"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("session endpoint is public", func(t *testing.T) {
		rec := do(http.MethodGet, "/auth/session", "admin", "")
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"authenticated":true`) {
			t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("liveness", func(t *testing.T) {
		if rec := do(http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("readiness reports the session store", func(t *testing.T) {
		rec := do(http.MethodGet, "/health/ready", "", "")
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"session_store":{"status":"unhealthy"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("metrics are exposed", func(t *testing.T) {
		rec := do(http.MethodGet, "/metrics", "", "")
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "reservas_logins_total") {
			t.Fatalf("expected custom metrics in exposition, got %d", rec.Code)
		}
	})
}
