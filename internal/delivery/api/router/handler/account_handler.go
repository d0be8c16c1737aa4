// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"autoserv/internal/delivery/api/response"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/errors"
	"autoserv/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
	binder echo.DefaultBinder
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerAccountRequest
	if err := h.binder.BindBody(c, &req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}

	output, err := h.uc.RegisterAccount(c.Request().Context(), &usecase.RegisterAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.MessageBody{
		Message: "Registered successfully",
		User:    output.User,
	})
}
