package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNormalize_Auth(t *testing.T) {
	f := Normalize(KindAuth, &BackendError{Op: "login", Status: 401, Message: "senha incorreta"})
	if f.UserMessage != MsgInvalidCredentials {
		t.Fatalf("auth failures must stay generic, got %q", f.UserMessage)
	}
	if f.HTTPStatus() != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", f.HTTPStatus())
	}
}

func TestNormalize_LoadPrefersBackendMessage(t *testing.T) {
	f := Normalize(KindLoad, fmt.Errorf("list spaces: %w", &BackendError{Op: "GET /espacos", Status: 500, Message: "banco indisponível", Body: []byte(`{"message":"banco indisponível"}`)}))
	if f.UserMessage != "Erro ao carregar dados iniciais: banco indisponível" {
		t.Fatalf("unexpected message %q", f.UserMessage)
	}
	if f.HTTPStatus() != http.StatusBadGateway {
		t.Fatalf("unexpected status %d", f.HTTPStatus())
	}
	if f.Diagnostic == "" {
		t.Fatalf("expected diagnostic")
	}

}

func TestNormalize_LoadKeepsInternalTextOutOfMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid stored date", fmt.Errorf("reservation 9: %w: %q", ErrInvalidDate, "x"), MsgInvalidStoredDate},
		{"no response", &BackendError{Op: "GET /espacos", Err: errors.New("dial tcp: connection refused")}, MsgServerUnreachable},
		{"timeout", &BackendError{Op: "GET /espacos", Err: fmt.Errorf("request: %w", context.DeadlineExceeded)}, MsgTimeout},
		{"status without message", &BackendError{Op: "GET /espacos", Status: 500}, MsgServerError + " (status 500)"},
		{"unknown", errors.New("dial tcp: connection refused"), MsgUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Normalize(KindLoad, tt.err)
			if want := MsgLoadFailed + ": " + tt.want; f.UserMessage != want {
				t.Fatalf("got %q, want %q", f.UserMessage, want)
			}
			if f.Diagnostic == "" {
				t.Fatalf("expected diagnostic")
			}
		})
	}
}

func TestNormalize_Submit(t *testing.T) {
	f := Normalize(KindSubmit, &BackendError{Op: "POST /reservas", Status: 409, Message: "Espaço já reservado"})
	if f.UserMessage != "Espaço já reservado" || f.HTTPStatus() != http.StatusConflict {
		t.Fatalf("unexpected failure %+v status=%d", f, f.HTTPStatus())
	}

	f = Normalize(KindSubmit, &BackendError{Op: "POST /reservas", Status: 500})
	if f.UserMessage != MsgSaveFailed {
		t.Fatalf("expected fallback message, got %q", f.UserMessage)
	}
	if f.Notification().Severity != SeverityError {
		t.Fatalf("expected error notification")
	}
}

func TestNormalize_RuleAndState(t *testing.T) {
	f := Normalize(KindSubmit, ErrDurationExceeded)
	if f.Kind != KindValidation || f.Rule != "max_duration" || f.UserMessage != ErrDurationExceeded.Message {
		t.Fatalf("unexpected validation failure %+v", f)
	}
	if f.HTTPStatus() != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status %d", f.HTTPStatus())
	}

	f = Normalize(KindSubmit, ErrFormBusy)
	if f.Kind != KindState || f.HTTPStatus() != http.StatusConflict {
		t.Fatalf("unexpected state failure %+v", f)
	}
}

func TestNormalize_PassThrough(t *testing.T) {
	if Normalize(KindLoad, nil) != nil {
		t.Fatalf("nil error must normalize to nil")
	}
	orig := &Failure{Kind: KindSubmit, UserMessage: "x"}
	if got := Normalize(KindLoad, fmt.Errorf("wrapped: %w", orig)); got != orig {
		t.Fatalf("expected existing failure to pass through")
	}
}
