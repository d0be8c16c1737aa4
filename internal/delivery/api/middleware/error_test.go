package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "autoserv/internal/delivery/context"
	domainerrors "autoserv/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"autoserv/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Meta    *struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/auth/register", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "conflict",
			err:         errors.Wrap(domainerrors.ErrEmailAlreadyInUse, "insert"),
			wantStatus:  http.StatusConflict,
			wantCode:    "EMAIL_ALREADY_IN_USE",
			wantMessage: "Email already in use",
		},
		{
			name:        "validation",
			err:         domainerrors.ErrMissingRequiredField,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "MISSING_REQUIRED_FIELD",
			wantMessage: "name, email and password are required",
		},
		{
			name:        "short secret is a client error",
			err:         domainerrors.ErrSecretTooShort,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PASSWORD_TOO_SHORT",
			wantMessage: "Password must be at least 6 characters",
		},
		{
			name:        "store failure hides driver details",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("pq: password authentication failed for user admin"), "insert"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_EXECUTE_FAILED",
			wantMessage: "Internal server error, please try again later",
		},
		{
			name:        "echo not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Not Found",
		},
		{
			name:        "body too large",
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "PAYLOAD_TOO_LARGE",
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unknown error",
			err:         errors.New("nil pointer somewhere deep"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handle(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Meta)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "pq:")
			assert.NotContains(t, rec.Body.String(), "nil pointer")
		})
	}
}
