package impl

import (
	"strings"
	"unicode/utf8"

	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/usecase"

	"github.com/go-playground/validator/v10"
)

const (
	minNameLength = 2
	maxNameLength = 60
	emailRule     = "email,max=254"
)

// emailValidator is safe for concurrent use once constructed.
var emailValidator = validator.New()

// registration is a RegisterAccountInput after presence checks and normalization.
type registration struct {
	name     string
	email    string
	password string
}

// normalizeRegistration enforces presence of every field and normalizes the email.
// Whitespace-only name or email counts as missing. The password is kept verbatim.
func normalizeRegistration(input *usecase.RegisterAccountInput) (*registration, error) {
	if input == nil {
		return nil, domainerrors.ErrMissingRequiredField
	}

	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingRequiredField
	}

	return &registration{
		name:     name,
		email:    email,
		password: input.Password,
	}, nil
}

// normalizeEmail trims surrounding whitespace and lower-cases the address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateIdentity checks name length and email grammar on normalized values.
func validateIdentity(reg *registration) error {
	if n := utf8.RuneCountInString(reg.name); n < minNameLength || n > maxNameLength {
		return domainerrors.ErrInvalidName
	}

	if err := emailValidator.Var(reg.email, emailRule); err != nil {
		return domainerrors.ErrInvalidEmail
	}

	return nil
}
