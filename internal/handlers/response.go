package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/utils"
)

type APIError struct {
	Message string           `json:"message"`
	Code    string           `json:"code,omitempty"`
	Fields  []dto.FieldError `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondServiceError maps the shared error taxonomy onto HTTP statuses.
// Validation failures keep their per-field messages; anything outside the
// taxonomy is reported as a storage fault without leaking the cause.
func RespondServiceError(c *gin.Context, err error) {
	var vErr *dto.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{
			Message: "validation failed",
			Code:    "validation_failed",
			Fields:  vErr.Fields,
		}})
	case errors.Is(err, domain.ErrValidation):
		RespondError(c, http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, domain.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, domain.ErrConflict):
		RespondError(c, http.StatusConflict, "conflict", err)
	default:
		RespondError(c, http.StatusInternalServerError, "storage_unavailable", errors.New("storage unavailable"))
	}
}

// parseIDParam validates a positive-integer path parameter, answering 400
// itself when the value cannot address a row.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return 0, false
	}
	return id, true
}
