// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"autoserv/internal/domain/entity"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/errors"
	"autoserv/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// FindByEmail retrieves the account that owns the normalized email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var row model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	return model.ToAccountEntity(&row), nil
}

// InsertUnique is a single INSERT. The accounts_email_key unique index rejects duplicates atomically.
func (repo *accountRepository) InsertUnique(ctx context.Context, account *entity.Account) error {
	row := model.FromAccountEntity(account)
	if err := model.PrepareAccountInsert(row, repo.now()); err != nil {
		return errors.Wrap(err, "failed to generate account id")
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyInUse.WrapMessage("unique violation on " + constraintName(err))
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "account row rejected by constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert account")
	}

	account.ID = row.ID
	account.CreatedAt = row.CreatedAt
	account.UpdatedAt = row.UpdatedAt

	return nil
}
