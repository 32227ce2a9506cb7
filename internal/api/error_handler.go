package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
// Ruta is only set on unrecognised routes, Error only on unhandled faults.
type errorResponse struct {
	Ok      bool   `json:"ok"`
	Mensaje string `json:"mensaje"`
	Ruta    string `json:"ruta,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps each classified domain error kind to its HTTP status code.
//   - Renders unknown routes as 404 with the requested path.
//   - Logs unexpected errors and renders them as 500 with the fault detail.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Classified business failures → deterministic statuses.
	var de *domain.Error
	if errors.As(err, &de) && de.Kind != domain.KindFault {
		return kindStatus(de.Kind), errorResponse{Mensaje: de.Mensaje}
	}

	// Echo's own errors: router 404s get the ruta field, bind failures and
	// the rest keep their code and message.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp := errorResponse{Mensaje: fmt.Sprintf("%v", he.Message)}
		if he.Code == http.StatusNotFound {
			resp.Mensaje = "Endpoint no encontrado"
			resp.Ruta = c.Request().URL.Path
		}
		return he.Code, resp
	}

	// Unexpected fault: log the real cause, return the generic envelope.
	cause := err
	if de != nil && de.Err != nil {
		cause = de.Err
	}
	log.Error().
		Err(cause).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Mensaje: domain.MsgErrorInterno,
		Error:   cause.Error(),
	}
}

func kindStatus(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMissingFields, domain.KindInvalidTipo, domain.KindDuplicateEmail:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
