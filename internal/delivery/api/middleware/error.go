package middleware

import (
	"log/slog"
	"net/http"

	"autoserv/internal/delivery/api/response"
	deliverycontext "autoserv/internal/delivery/context"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Server-side
// failures are logged with their cause and answered with a generic message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("kind", string(appErr.Kind())),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}
		m.write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			logger.Error("HTTP error", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
			m.write(c, http.StatusInternalServerError, "INTERNAL_ERROR", domainerrors.ErrInternalError.Message())

			return
		}
		m.write(c, httpErr.Code, httpErrorCode(httpErr.Code), httpErrorMessage(httpErr))

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.write(c, http.StatusInternalServerError, "INTERNAL_ERROR", domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) write(c echo.Context, status int, code, message string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = response.Error(c, status, code, message)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	default:
		return "HTTP_ERROR"
	}
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
