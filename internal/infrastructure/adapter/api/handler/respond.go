package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standard error body for a domain error
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Don't leak internal error detail to clients
		message = domainerr.ErrInternalServer.Error()
	}
	c.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  domainerr.ErrorCode(err),
	})
}

// respondBadRequest writes a 400 with the given message
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  domainerr.ErrorCode(domainerr.ErrInvalidRequest),
	})
}
