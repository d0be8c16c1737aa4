// Package response writes the JSON bodies shared by every API handler.
package response

import (
	"net/http"

	deliverycontext "autoserv/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the shape of every error response. Message is always human-readable.
type ErrorBody struct {
	Message string    `json:"message"`
	Code    string    `json:"code,omitempty"` // Machine-readable error code, e.g. "EMAIL_ALREADY_IN_USE"
	Meta    *MetaInfo `json:"meta,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// MessageBody is used by endpoints that answer with a message and a payload.
type MessageBody struct {
	Message string `json:"message"`
	User    any    `json:"user,omitempty"`
}

// Error writes an error body. Callers pass only client-safe messages.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	body := ErrorBody{
		Message: message,
		Code:    errorCode,
	}
	if id := deliverycontext.GetRequestID(c); id != "" {
		body.Meta = &MetaInfo{RequestID: id}
	}

	return c.JSON(statusCode, body)
}

// OK writes a 200 with data as the whole body.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 with data as the whole body.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// InternalServerError writes the generic 500 body.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later")
}
