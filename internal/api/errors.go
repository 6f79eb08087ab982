package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/dragboard/internal/models"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps the error taxonomy to an HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the error body. Infrastructure failures are not echoed.
func abortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}
