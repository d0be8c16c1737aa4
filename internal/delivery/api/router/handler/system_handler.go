package handler

import (
	"time"

	"autoserv/internal/delivery/api/response"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/errors"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves health, echo and failure-simulation endpoints.
type SystemHandler struct {
	now    func() time.Time
	binder echo.DefaultBinder
}

// NewSystemHandler creates a new SystemHandler instance
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{now: time.Now}
}

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

type echoResponse struct {
	Received   map[string]any `json:"received"`
	ServerTime string         `json:"serverTime"`
}

// Health handles GET /api/health.
func (h *SystemHandler) Health(c echo.Context) error {
	return response.OK(c, healthResponse{
		Status: "OK",
		Time:   h.timestamp(),
	})
}

// Echo handles POST /api/echo. Only a non-empty JSON object is accepted.
func (h *SystemHandler) Echo(c echo.Context) error {
	var body map[string]any
	if err := h.binder.BindBody(c, &body); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}
	if len(body) == 0 {
		return domainerrors.ErrEmptyBody
	}

	return response.Created(c, echoResponse{
		Received:   body,
		ServerTime: h.timestamp(),
	})
}

// Break handles GET /api/break and always fails.
func (h *SystemHandler) Break(c echo.Context) error {
	return errors.New("simulated failure from break endpoint")
}

func (h *SystemHandler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}
