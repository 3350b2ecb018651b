package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSession     = errors.New("invalid session token")
	ErrInvalidDate        = errors.New("invalid calendar date")
	ErrFormBusy           = errors.New("form is not accepting input")
	ErrStaleLoad          = errors.New("load superseded by a newer one")
)

// RuleError is a client-side validation rule that blocked a submission.
type RuleError struct {
	Code    string
	Message string
}

func (e *RuleError) Error() string { return e.Code + ": " + e.Message }

var (
	ErrDateRequired        = &RuleError{Code: "date_required", Message: "É necessário selecionar uma data"}
	ErrDateInPast          = &RuleError{Code: "date_in_past", Message: "A data não pode ser anterior a hoje"}
	ErrOutsideOpeningHours = &RuleError{Code: "opening_hours", Message: "Horário deve estar entre 06:00 e 23:00"}
	ErrDurationExceeded    = &RuleError{Code: "max_duration", Message: "A reserva deve ter no máximo 1 hora e 15 minutos"}
	ErrTimeFormat          = &RuleError{Code: "time_format", Message: "Informe os horários no formato HH:MM"}
	ErrSelectionRequired   = &RuleError{Code: "selection_required", Message: "Selecione o espaço acadêmico e o professor"}
)

// BackendError describes a failed call to the reservation backend.
// Status is 0 when no response was received.
type BackendError struct {
	Op      string
	Status  int
	Message string
	Body    []byte
	Err     error
}

func (e *BackendError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
}

func (e *BackendError) Unwrap() error { return e.Err }

// Kind classifies a failure by the user action it interrupted.
type Kind string

const (
	KindAuth       Kind = "auth"
	KindLoad       Kind = "load"
	KindValidation Kind = "validation"
	KindSubmit     Kind = "submit"
	KindState      Kind = "state"
	KindInternal   Kind = "internal"
)

const (
	MsgInvalidCredentials = "Credenciais inválidas"
	MsgLoadFailed         = "Erro ao carregar dados iniciais"
	MsgSaveFailed         = "Erro ao salvar reserva"
	MsgFormBusy           = "Aguarde o término da operação em andamento"
	MsgUnexpected         = "Erro inesperado"

	MsgTimeout           = "o servidor demorou demais para responder"
	MsgServerUnreachable = "não foi possível conectar ao servidor"
	MsgServerError       = "o servidor retornou um erro"
	MsgInvalidStoredDate = "a reserva possui uma data inválida"
)

// Failure is the normalized form of every error shown to a user.
type Failure struct {
	Kind        Kind   `json:"kind"`
	UserMessage string `json:"error"`
	Rule        string `json:"rule,omitempty"`
	Diagnostic  string `json:"-"`
	Err         error  `json:"-"`
}

func (f *Failure) Error() string {
	if f.Diagnostic != "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Diagnostic)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.UserMessage)
}

func (f *Failure) Unwrap() error { return f.Err }

// Notification renders the failure as an error notification.
func (f *Failure) Notification() Notification {
	return Notification{Severity: SeverityError, Message: f.UserMessage}
}

// HTTPStatus maps the failure kind to a response status.
func (f *Failure) HTTPStatus() int {
	switch f.Kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindState:
		return http.StatusConflict
	case KindLoad, KindSubmit:
		var be *BackendError
		if errors.As(f.Err, &be) && be.Status >= 400 && be.Status < 500 {
			return be.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Normalize turns any error raised while performing a user action of the
// given kind into a Failure. It is the only place user-facing error text is
// composed.
func Normalize(kind Kind, err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	out := &Failure{Kind: kind, Err: err, Diagnostic: diagnostic(err)}

	var rule *RuleError
	if errors.As(err, &rule) {
		out.Kind = KindValidation
		out.UserMessage = rule.Message
		out.Rule = rule.Code
		return out
	}
	if errors.Is(err, ErrFormBusy) {
		out.Kind = KindState
		out.UserMessage = MsgFormBusy
		return out
	}

	switch kind {
	case KindAuth:
		out.UserMessage = MsgInvalidCredentials
	case KindLoad:
		out.UserMessage = MsgLoadFailed + ": " + detail(err)
	case KindSubmit:
		out.UserMessage = MsgSaveFailed
		var be *BackendError
		if errors.As(err, &be) && be.Message != "" {
			out.UserMessage = be.Message
		}
	default:
		out.UserMessage = MsgUnexpected
	}
	return out
}

// detail prefers the backend-supplied message. Internal error text only goes
// to Diagnostic.
func detail(err error) string {
	var be *BackendError
	switch {
	case errors.As(err, &be) && be.Message != "":
		return be.Message
	case isTimeout(err):
		return MsgTimeout
	case be != nil && be.Status == 0:
		return MsgServerUnreachable
	case be != nil:
		return fmt.Sprintf("%s (status %d)", MsgServerError, be.Status)
	case errors.Is(err, ErrInvalidDate):
		return MsgInvalidStoredDate
	default:
		return MsgUnexpected
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func diagnostic(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return fmt.Sprintf("op=%s status=%d message=%q body=%s", be.Op, be.Status, be.Message, be.Body)
	}
	return err.Error()
}
