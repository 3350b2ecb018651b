package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ucasl/reservas-web/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string      `json:"error"`
	Kind  domain.Kind `json:"kind,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders every *domain.Failure as {"error": <user message>, "kind": <kind>}.
//   - Passes Echo's own errors through with their status.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var f *domain.Failure
	if !errors.As(err, &f) {
		f = domain.Normalize(domain.KindInternal, err)
	}

	code := f.HTTPStatus()
	if code >= http.StatusInternalServerError || f.Kind == domain.KindLoad || f.Kind == domain.KindSubmit {
		log.Error().
			Err(err).
			Str("kind", string(f.Kind)).
			Str("diagnostic", f.Diagnostic).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")
	}

	return code, errorResponse{Error: f.UserMessage, Kind: f.Kind}
}
