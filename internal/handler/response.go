package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicematch/internal/domain"
	"invoicematch/internal/reconciler"
)

// ErrorBody is the single error envelope: every failure yields a
// human-readable detail string.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorBody{Detail: detail})
}

// MapError translates component errors to HTTP status codes and detail
// messages. This is the only place errors become transport-level statuses.
func MapError(err error) (status int, detail string) {
	var providerErr *reconciler.ProviderError
	var malformedErr *reconciler.MalformedResponseError

	switch {
	case errors.Is(err, domain.ErrProviderNotConfigured):
		return http.StatusServiceUnavailable, "OpenAI client is not configured. Check API key."
	case errors.Is(err, domain.ErrInvalidDocument),
		errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "Error processing files: " + err.Error()
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "Error processing files: " + err.Error()
	case errors.As(err, &providerErr):
		return http.StatusBadGateway, "An error occurred with the OpenAI API: " + providerErr.Message
	case errors.As(err, &malformedErr):
		return http.StatusInternalServerError, "The AI returned an invalid format. Please try again."
	default:
		return http.StatusInternalServerError, "An unexpected server error occurred."
	}
}

// HandleError maps a component error and sends the appropriate response.
func HandleError(c *gin.Context, err error) {
	status, detail := MapError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] %d: %v", requestID, status, err)
	}
	RespondError(c, status, detail)
}
