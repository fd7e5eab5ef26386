package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/services"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the service error taxonomy onto HTTP statuses:
// unknown statuses are a bad request, missing records a 404, failed record
// store queries a 502 so callers can tell them apart from empty results.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidStatus):
		RespondError(c, http.StatusBadRequest, "invalid_status", err)
	case errors.Is(err, repos.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, services.ErrQueryFailed):
		RespondError(c, http.StatusBadGateway, "could_not_compute", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
