package sqlite

import (
	"context"
	"database/sql"
	"time"

	"autoserv/internal/domain/entity"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/errors"
	"autoserv/internal/infra/persistence/model"

	"github.com/google/uuid"
)

const (
	selectAccountByEmail = `SELECT id, name, email, credential_hash, created_at, updated_at
FROM accounts WHERE email = ? LIMIT 1`

	insertAccount = `INSERT INTO accounts (id, name, email, credential_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`
)

type accountRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewAccountRepository is the constructor for the SQLite account store.
func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var (
		row       model.AccountModel
		id        string
		createdAt int64
		updatedAt int64
	)

	err := repo.db.QueryRowContext(ctx, selectAccountByEmail, email).
		Scan(&id, &row.Name, &row.Email, &row.CredentialHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	if row.ID, err = uuid.Parse(id); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "corrupt account id")
	}
	row.CreatedAt = fromUnixNano(createdAt)
	row.UpdatedAt = fromUnixNano(updatedAt)

	return model.ToAccountEntity(&row), nil
}

// InsertUnique relies on the UNIQUE COLLATE NOCASE constraint on accounts.email.
func (repo *accountRepository) InsertUnique(ctx context.Context, account *entity.Account) error {
	row := model.FromAccountEntity(account)
	if err := model.PrepareAccountInsert(row, repo.now()); err != nil {
		return errors.Wrap(err, "failed to generate account id")
	}

	_, err := repo.db.ExecContext(ctx, insertAccount,
		row.ID.String(),
		row.Name,
		row.Email,
		row.CredentialHash,
		row.CreatedAt.UnixNano(),
		row.UpdatedAt.UnixNano(),
	)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyInUse.WrapMessage("unique violation on accounts.email")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert account")
	}

	account.ID = row.ID
	account.CreatedAt = fromUnixNano(row.CreatedAt.UnixNano())
	account.UpdatedAt = fromUnixNano(row.UpdatedAt.UnixNano())

	return nil
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
