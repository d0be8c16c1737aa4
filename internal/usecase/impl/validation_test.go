package impl

import (
	"testing"

	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRegistration(t *testing.T) {
	reg, err := normalizeRegistration(&usecase.RegisterAccountInput{
		Name:     "  Grace Hopper\t",
		Email:    " Grace@Navy.MIL ",
		Password: "  spaced secret  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", reg.name)
	assert.Equal(t, "grace@navy.mil", reg.email)
	assert.Equal(t, "  spaced secret  ", reg.password)
}

func TestNormalizeEmail_Idempotent(t *testing.T) {
	for _, email := range []string{"A@X.COM", "  mixed@Case.org ", "already@normal.io"} {
		once := normalizeEmail(email)
		assert.Equal(t, once, normalizeEmail(once))
	}
}

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name    string
		reg     registration
		wantErr error
	}{
		{name: "valid", reg: registration{name: "Al", email: "al@example.com"}},
		{name: "sixty characters", reg: registration{name: "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijabcdefghij", email: "a@b.co"}},
		{name: "one character", reg: registration{name: "A", email: "a@b.co"}, wantErr: domainerrors.ErrInvalidName},
		{name: "missing at sign", reg: registration{name: "Ada", email: "ada.example.com"}, wantErr: domainerrors.ErrInvalidEmail},
		{name: "missing domain", reg: registration{name: "Ada", email: "ada@"}, wantErr: domainerrors.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateIdentity(&tt.reg)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
