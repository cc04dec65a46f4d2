package apiresponses

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the error body of every non-2xx response. The single detail
// string is part of the external contract and is consumed by callers
// verbatim.
type APIError struct {
	Detail string `json:"detail"`
}

// RespondBadRequest sends a 400 Bad Request with the specific reason.
// Use this for validation rejections and malformed payloads.
func RespondBadRequest(c *gin.Context, reason string) {
	c.JSON(http.StatusBadRequest, APIError{Detail: reason})
}

// RespondDeliveryFailure sends a 500 with the fixed delivery-failure
// message. The underlying SMTP cause must be logged server-side by the
// caller; it is never exposed here.
func RespondDeliveryFailure(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, APIError{Detail: "Failed to send email"})
}

// RespondUnexpected sends a 500 that carries the failure text, for faults
// outside the validation and delivery taxonomy.
func RespondUnexpected(c *gin.Context, v any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		APIError{Detail: fmt.Sprintf("Error sending email: %v", v)})
}
