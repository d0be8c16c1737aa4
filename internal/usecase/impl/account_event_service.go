package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "autoserv/internal/delivery/context"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/domain/service"
	"autoserv/internal/errors"
	"autoserv/internal/usecase"

	"go.uber.org/fx"
)

type accountEventService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountEventServiceParams holds dependencies for AccountEventService, injected by Fx.
type AccountEventServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountEventService is the constructor for accountEventService.
func NewAccountEventService(params AccountEventServiceParams) usecase.AccountEventUsecase {
	return &accountEventService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// HandleAccountRegistered confirms the announced account exists before
// acknowledging the event. Unknown or superseded accounts are dropped.
func (srv *accountEventService) HandleAccountRegistered(ctx context.Context, event *service.AccountRegisteredEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event == nil || strings.TrimSpace(event.AccountID) == "" || strings.TrimSpace(event.Email) == "" {
		return domainerrors.ErrInvalidEvent
	}

	account, err := srv.accountRepo.FindByEmail(ctx, normalizeEmail(event.Email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			logger.Warn("Registered account not found, dropping event",
				slog.String("account_id", event.AccountID),
				slog.String("email", event.Email),
			)

			return errors.WithStack(err)
		}

		return errors.Wrap(err, "failed to look up registered account")
	}

	if account.ID.String() != event.AccountID {
		logger.Warn("Event account id does not match stored account, dropping event",
			slog.String("event_account_id", event.AccountID),
			slog.String("stored_account_id", account.ID.String()),
		)

		return nil
	}

	logger.Info("Account registration acknowledged",
		slog.String("account_id", event.AccountID),
		slog.String("email", account.Email),
		slog.Time("registered_at", event.RegisteredAt),
	)

	return nil
}
