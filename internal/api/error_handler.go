package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/core/domain"
)

const msgPartialDeletion = "Deletion incomplete: the freelancer and its user could not both be removed."

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs partial deletions and unexpected errors without leaking details.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err)
		if code >= http.StatusInternalServerError {
			event := log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path())
			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				event = event.Str("request_id", id)
			}
			if errors.Is(err, domain.ErrPartialDeletion) {
				event.Msg("partial deletion")
			} else {
				event.Msg("unhandled error")
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// resolveError maps err to a status code and a client-safe message.
func resolveError(err error) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusUnauthorized, "Access denied. No token provided."
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access denied."
	case errors.Is(err, domain.ErrPartialDeletion):
		return http.StatusInternalServerError, msgPartialDeletion
	case errors.Is(err, domain.ErrFreelancerNotFound):
		return http.StatusNotFound, "The freelancer with the given ID was not found."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "The user with the given ID was not found."
	case errors.Is(err, domain.ErrSkillNotFound):
		return http.StatusNotFound, "The skill with the given ID was not found."
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrDeletionInProgress):
		return http.StatusConflict, "A deletion of this freelancer is already in progress."
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already registered."
	case errors.Is(err, domain.ErrDuplicatePhone):
		return http.StatusConflict, "Phone number already in use."
	case errors.Is(err, domain.ErrProfileExists):
		return http.StatusConflict, "User already has a freelancer profile."
	case errors.Is(err, domain.ErrOwnerNotFound):
		return http.StatusUnprocessableEntity, "The owning user does not exist."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid email or password."
	}

	return http.StatusInternalServerError, "internal server error"
}

// statusCode resolves the status reported to HTTP metrics, which observe the
// error before the error handler renders it.
func statusCode(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	code, _ := resolveError(err)
	return code
}
