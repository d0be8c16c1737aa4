// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "autoserv/internal/delivery/context"
	"autoserv/internal/domain/entity"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/domain/service"
	"autoserv/internal/errors"
	"autoserv/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.CredentialHasher
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.CredentialHasher
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterAccount validates the input, hashes the secret and inserts the account.
// The store's unique constraint decides between concurrent registrations of the
// same email; the lookup before hashing only short-circuits obvious duplicates.
func (srv *accountService) RegisterAccount(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.RegisterAccountOutput, error) {
	reg, err := normalizeRegistration(input)
	if err != nil {
		return nil, err
	}

	logger := srv.log(ctx).With(slog.String("email", reg.email))
	logger.Info("Starting registration")

	if err := srv.ensureEmailAvailable(ctx, reg.email); err != nil {
		return nil, err
	}

	if err := validateIdentity(reg); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(reg.password)
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindValidation {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Name:           reg.name,
		Email:          reg.email,
		CredentialHash: hash,
	}

	// Once hashing is done the write runs to completion even if the client goes away.
	if err := srv.accountRepo.InsertUnique(context.WithoutCancel(ctx), account); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyInUse) {
			logger.Info("Registration lost uniqueness race")

			return nil, domainerrors.ErrEmailAlreadyInUse
		}

		return nil, errors.Wrap(err, "failed to insert account")
	}

	logger.Info("Account registered", slog.String("account_id", account.ID.String()))

	srv.publishRegistered(ctx, account)

	return &usecase.RegisterAccountOutput{User: usecase.ToExternalAccount(account)}, nil
}

func (srv *accountService) ensureEmailAvailable(ctx context.Context, email string) error {
	existing, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up account by email")
	}
	if existing != nil {
		return domainerrors.ErrEmailAlreadyInUse
	}

	return nil
}

// publishRegistered is best-effort. A broker outage never fails a registration that is already durable.
func (srv *accountService) publishRegistered(ctx context.Context, account *entity.Account) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountRegisteredEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:    account.ID.String(),
		Name:         account.Name,
		Email:        account.Email,
		RegisteredAt: account.CreatedAt.UTC().Truncate(time.Millisecond),
	}

	if err := srv.publisher.PublishAccountRegistered(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Warn("Failed to publish account registered event",
			slog.String("account_id", event.AccountID),
			slog.Any("error", err),
		)
	}
}
