package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autoserv/config"
	"autoserv/internal/domain/constants"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/domain/service"
	"autoserv/internal/errors"
	"autoserv/internal/infra/pubsub"
	mockUsecase "autoserv/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockAccountEventUsecase) {
	events := mockUsecase.NewMockAccountEventUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Events: events,
	})

	return h, events
}

func pushBody(t *testing.T, event map[string]any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var push pubsub.PushMessage
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = attributes
	push.Message.MessageID = "msg-1"
	push.Subscription = "projects/local/subscriptions/account-registered-sub"

	body, err := json.Marshal(push)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_Acknowledges(t *testing.T) {
	h, events := newTestPushHandler(t, &config.Config{})

	events.EXPECT().
		HandleAccountRegistered(mock.Anything, mock.MatchedBy(func(e *service.AccountRegisteredEvent) bool {
			return e.AccountID == "acc-1" && e.Email == "a@x.com" && e.RequestID == "req-9"
		})).
		Return(nil).
		Once()

	rec := servePush(h, pushBody(t,
		map[string]any{"account_id": "acc-1", "email": "a@x.com"},
		map[string]string{"event_type": constants.EventTypeAccountRegistered, "request_id": "req-9"},
	), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ResponseCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"store failure asks for redelivery", domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "find"), http.StatusServiceUnavailable},
		{"unknown account is acknowledged", errors.WithStack(repository.ErrAccountNotFound), http.StatusOK},
		{"invalid event is acknowledged", domainerrors.ErrInvalidEvent, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, events := newTestPushHandler(t, &config.Config{})
			events.EXPECT().HandleAccountRegistered(mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := servePush(h, pushBody(t, map[string]any{"account_id": "acc-1", "email": "a@x.com"}, nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RejectsUnreadableMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, pushBody(t,
		map[string]any{"account_id": "acc-1"},
		map[string]string{"event_type": "account.deleted"},
	), nil).Code)
}

func TestPushHandler_VerifiesTokenForGoogleOutsideLocal(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, events := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	h.validateToken = func(req *http.Request) error {
		if req.Header.Get(echo.HeaderAuthorization) != "Bearer good" {
			return errors.New("bad token")
		}

		return nil
	}

	body := pushBody(t, map[string]any{"account_id": "acc-1", "email": "a@x.com"}, nil)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, nil).Code)

	events.EXPECT().HandleAccountRegistered(mock.Anything, mock.Anything).Return(nil).Once()
	rec := servePush(h, body, http.Header{echo.HeaderAuthorization: []string{"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SkipsTokenLocally(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvLocal

	h, _ := newTestPushHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_RejectsMalformedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}
