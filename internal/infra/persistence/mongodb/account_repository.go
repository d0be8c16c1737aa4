package mongodb

import (
	"context"
	"time"

	"autoserv/internal/domain/entity"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type accountRepository struct {
	accounts *mongo.Collection
	now      func() time.Time
}

// NewAccountRepository is the constructor for the MongoDB account store.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{
		accounts: db.Collection(accountsCollection),
		// BSON dates have millisecond precision.
		now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var doc accountDocument
	err := repo.accounts.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	account, err := doc.toEntity()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "corrupt account id")
	}

	return account, nil
}

// InsertUnique is a single InsertOne guarded by the accounts_email_key unique index.
func (repo *accountRepository) InsertUnique(ctx context.Context, account *entity.Account) error {
	doc, err := repo.prepare(account)
	if err != nil {
		return err
	}

	if _, err := repo.accounts.InsertOne(ctx, doc); err != nil {
		return translateInsertError(err)
	}

	account.ID = uuid.MustParse(doc.ID)
	account.CreatedAt = doc.CreatedAt
	account.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *accountRepository) prepare(account *entity.Account) (*accountDocument, error) {
	doc := fromAccountEntity(account)
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate account id")
		}
		doc.ID = id.String()
	}

	now := repo.now()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = doc.CreatedAt
	}

	return doc, nil
}

func translateInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return domainerrors.ErrEmailAlreadyInUse.WrapMessage("unique violation on " + accountEmailIndex)
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to insert account")
}
