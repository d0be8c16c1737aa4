package usecase

import (
	"context"

	"autoserv/internal/domain/service"
)

// AccountEventUsecase consumes events emitted after a registration.
type AccountEventUsecase interface {
	// HandleAccountRegistered returns an error of store kind when the event
	// should be redelivered. Any other error means the event can be dropped.
	HandleAccountRegistered(ctx context.Context, event *service.AccountRegisteredEvent) error
}
