package impl

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	deliverycontext "autoserv/internal/delivery/context"
	"autoserv/internal/domain/entity"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/domain/service"
	mockRepo "autoserv/internal/mocks/repository"
	mockSvc "autoserv/internal/mocks/service"
	"autoserv/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockCredentialHasher
	publisher   *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockCredentialHasher(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     svc,
		accountRepo: accountRepo,
		hasher:      hasher,
		publisher:   publisher,
	}
}

// assignStoreFields mimics what a real store does on a successful insert.
func assignStoreFields(_ context.Context, account *entity.Account) error {
	now := time.Now().UTC()
	account.ID = uuid.New()
	account.CreatedAt = now
	account.UpdatedAt = now

	return nil
}

func TestAccountService_RegisterAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.EXPECT().Hash("s3cret!").Return("$2a$10$hash", nil).Once()
	fx.accountRepo.EXPECT().
		InsertUnique(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Name == "Ada Lovelace" && a.Email == "ada@example.com" && a.CredentialHash == "$2a$10$hash"
		})).
		RunAndReturn(assignStoreFields).
		Once()
	fx.publisher.EXPECT().
		PublishAccountRegistered(mock.Anything, mock.MatchedBy(func(e *service.AccountRegisteredEvent) bool {
			return e.RequestID == "req-42" && e.Email == "ada@example.com" && e.Name == "Ada Lovelace" && e.AccountID != ""
		})).
		Return(nil).
		Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{
		Name:     "  Ada Lovelace ",
		Email:    "  Ada@Example.COM ",
		Password: "s3cret!",
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.User.ID)
	assert.Equal(t, "Ada Lovelace", out.User.Name)
	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.False(t, out.User.CreatedAt.IsZero())
}

func TestAccountService_RegisterAccount_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterAccountInput
	}{
		{name: "nil input", input: nil},
		{name: "missing name", input: &usecase.RegisterAccountInput{Email: "a@x.com", Password: "secret1"}},
		{name: "missing email", input: &usecase.RegisterAccountInput{Name: "Ada", Password: "secret1"}},
		{name: "missing password", input: &usecase.RegisterAccountInput{Name: "Ada", Email: "a@x.com"}},
		{name: "whitespace name", input: &usecase.RegisterAccountInput{Name: "   ", Email: "a@x.com", Password: "secret1"}},
		{name: "whitespace email", input: &usecase.RegisterAccountInput{Name: "Ada", Email: " \t ", Password: "secret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any store or hasher call fails the test.
			fx := createTestAccountService(t)

			out, err := fx.service.RegisterAccount(context.Background(), tt.input)

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingRequiredField))
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestAccountService_RegisterAccount_InvalidIdentity(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.RegisterAccountInput
		email   string
		wantErr error
	}{
		{
			name:    "name too short after trim",
			input:   usecase.RegisterAccountInput{Name: " A ", Email: "a@x.com", Password: "secret1"},
			email:   "a@x.com",
			wantErr: domainerrors.ErrInvalidName,
		},
		{
			name:    "name too long",
			input:   usecase.RegisterAccountInput{Name: strings.Repeat("n", 61), Email: "a@x.com", Password: "secret1"},
			email:   "a@x.com",
			wantErr: domainerrors.ErrInvalidName,
		},
		{
			name:    "malformed email",
			input:   usecase.RegisterAccountInput{Name: "Ada", Email: "not-an-email", Password: "secret1"},
			email:   "not-an-email",
			wantErr: domainerrors.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()

			fx.accountRepo.EXPECT().FindByEmail(ctx, tt.email).Return(nil, repository.ErrAccountNotFound).Once()

			out, err := fx.service.RegisterAccount(ctx, &tt.input)

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
			fx.accountRepo.AssertNotCalled(t, "InsertUnique", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountService_RegisterAccount_NameLengthCountsRunes(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	name := strings.Repeat("é", 60)

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.EXPECT().Hash("secret1").Return("hash", nil).Once()
	fx.accountRepo.EXPECT().InsertUnique(mock.Anything, mock.Anything).RunAndReturn(assignStoreFields).Once()
	fx.publisher.EXPECT().PublishAccountRegistered(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{Name: name, Email: "a@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, name, out.User.Name)
}

func TestAccountService_RegisterAccount_DuplicateOnPreCheck(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", CredentialHash: "h"}
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(existing, nil).Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{
		Name:     "Someone Else",
		Email:    "ADA@example.com",
		Password: "another1",
	})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_RegisterAccount_LosesRaceOnInsert(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.EXPECT().Hash("secret1").Return("hash", nil).Once()
	fx.accountRepo.EXPECT().
		InsertUnique(mock.Anything, mock.Anything).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyInUse, "accounts_email_key")).
		Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
	// The race path reports the same message as the pre-check path.
	assert.Equal(t, domainerrors.ErrEmailAlreadyInUse.Error(), err.Error())
	fx.publisher.AssertNotCalled(t, "PublishAccountRegistered", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterAccount_LookupFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find account by email")
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, dbErr).Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	assert.Nil(t, out)
	assert.Equal(t, domainerrors.KindStore, domainerrors.KindOf(err))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_RegisterAccount_InsertFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.EXPECT().Hash("secret1").Return("hash", nil).Once()
	fx.accountRepo.EXPECT().
		InsertUnique(mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "insert account")).
		Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	assert.Nil(t, out)
	assert.Equal(t, domainerrors.KindStore, domainerrors.KindOf(err))
	fx.publisher.AssertNotCalled(t, "PublishAccountRegistered", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterAccount_ShortSecret(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.EXPECT().Hash("12345").Return("", domainerrors.ErrSecretTooShort).Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{Name: "Ada", Email: "ada@example.com", Password: "12345"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrSecretTooShort))
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	fx.accountRepo.AssertNotCalled(t, "InsertUnique", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterAccount_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("entropy exhausted")).Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestAccountService_RegisterAccount_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.EXPECT().Hash("secret1").Return("hash", nil).Once()
	fx.accountRepo.EXPECT().InsertUnique(mock.Anything, mock.Anything).RunAndReturn(assignStoreFields).Once()
	fx.publisher.EXPECT().PublishAccountRegistered(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.User.Email)
}

func TestAccountService_RegisterAccount_InsertSurvivesCallerCancellation(t *testing.T) {
	fx := createTestAccountService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.accountRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.EXPECT().
		Hash("secret1").
		RunAndReturn(func(string) (string, error) {
			// Client disconnects while the hash is being computed.
			cancel()

			return "hash", nil
		}).
		Once()
	fx.accountRepo.EXPECT().
		InsertUnique(mock.Anything, mock.Anything).
		RunAndReturn(func(insertCtx context.Context, account *entity.Account) error {
			assert.NoError(t, insertCtx.Err())

			return assignStoreFields(insertCtx, account)
		}).
		Once()
	fx.publisher.EXPECT().PublishAccountRegistered(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.User.ID)
}

// TestAccountService_RegisterAccount_ConcurrentSameEmail passes both requests
// through the pre-check before either inserts, so only the store's atomic
// insert can decide the winner.
func TestAccountService_RegisterAccount_ConcurrentSameEmail(t *testing.T) {
	fx := createTestAccountService(t)

	var (
		lookups sync.WaitGroup
		owners  sync.Map
	)
	lookups.Add(2)

	fx.accountRepo.EXPECT().
		FindByEmail(mock.Anything, "a@x.com").
		RunAndReturn(func(context.Context, string) (*entity.Account, error) {
			lookups.Done()
			lookups.Wait()

			return nil, repository.ErrAccountNotFound
		}).
		Twice()
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Twice()
	fx.accountRepo.EXPECT().
		InsertUnique(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, account *entity.Account) error {
			if _, loaded := owners.LoadOrStore(account.Email, struct{}{}); loaded {
				return errors.WithStack(domainerrors.ErrEmailAlreadyInUse)
			}

			return assignStoreFields(ctx, account)
		}).
		Twice()
	fx.publisher.EXPECT().PublishAccountRegistered(mock.Anything, mock.Anything).Return(nil).Once()

	inputs := []*usecase.RegisterAccountInput{
		{Name: "First", Email: "A@x.com", Password: "secret1"},
		{Name: "Second", Email: " a@x.com ", Password: "secret2"},
	}

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)
	for _, input := range inputs {
		wg.Add(1)
		go func(input *usecase.RegisterAccountInput) {
			defer wg.Done()

			_, err := fx.service.RegisterAccount(context.Background(), input)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, domainerrors.ErrEmailAlreadyInUse):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(input)
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(1), conflicts.Load())
}
