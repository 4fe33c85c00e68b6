package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/avolkov/inkwell/internal/service"
	"github.com/avolkov/inkwell/internal/store"
	"github.com/avolkov/inkwell/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:        http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrSessionInvalid:      http.StatusUnauthorized,
	service.ErrNotFoundOrForbidden: http.StatusNotFound,

	store.ErrHandleAlreadyExists: http.StatusConflict,
	store.ErrAccountNotFound:     http.StatusNotFound,
	store.ErrArticleNotFound:     http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError converts a service error to its user-facing message.
// Expected outcomes keep their sentinel text (the ErrInvalidInput case keeps
// the wrapped reason so the user can correct the field); anything unexpected
// collapses to a generic message so internals never leak to the client.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return err.Error()
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return http.StatusText(status)
}

// renderError maps err to a status code and writes the uniform JSON error
// payload.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	writeError(w, r, status, messageFromError(err, status))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, models.ErrorResponse{Message: message})
}
