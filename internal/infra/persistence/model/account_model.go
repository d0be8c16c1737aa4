// Package model holds the row shapes shared by the SQL backends.
package model

import (
	"time"

	"autoserv/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are generated by the application (UUIDv7).
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(60);not null"`
	Email          string    `gorm:"type:varchar(254);not null;uniqueIndex:accounts_email_key"`
	CredentialHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToAccountEntity converts a persistence model to a domain Account.
func ToAccountEntity(data *AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		CredentialHash: data.CredentialHash,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// FromAccountEntity converts a domain Account for persistence.
func FromAccountEntity(data *entity.Account) *AccountModel {
	if data == nil {
		return nil
	}

	return &AccountModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		CredentialHash: data.CredentialHash,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// PrepareAccountInsert assigns the identifier and timestamps a new row needs.
// Values already set on the model are kept.
func PrepareAccountInsert(data *AccountModel, now time.Time) error {
	if data.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		data.ID = id
	}
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	if data.UpdatedAt.IsZero() {
		data.UpdatedAt = data.CreatedAt
	}

	return nil
}
