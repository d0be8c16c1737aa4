package mongodb

import (
	"time"

	"autoserv/internal/domain/entity"

	"github.com/google/uuid"
)

// accountDocument is the stored shape of an account. _id holds the UUID string.
type accountDocument struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	Email          string    `bson:"email"`
	CredentialHash string    `bson:"credentialHash"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

type serviceDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Description  string    `bson:"description"`
	BasePrice    float64   `bson:"basePrice"`
	DurationMins int       `bson:"durationMins"`
	IsActive     bool      `bson:"isActive"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func fromAccountEntity(account *entity.Account) *accountDocument {
	return &accountDocument{
		ID:             account.ID.String(),
		Name:           account.Name,
		Email:          account.Email,
		CredentialHash: account.CredentialHash,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

func (doc *accountDocument) toEntity() (*entity.Account, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Account{
		ID:             id,
		Name:           doc.Name,
		Email:          doc.Email,
		CredentialHash: doc.CredentialHash,
		CreatedAt:      doc.CreatedAt.UTC(),
		UpdatedAt:      doc.UpdatedAt.UTC(),
	}, nil
}

func (doc *serviceDocument) toEntity() (*entity.ServiceOffering, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}

	return &entity.ServiceOffering{
		ID:           id,
		Name:         doc.Name,
		Description:  doc.Description,
		BasePrice:    doc.BasePrice,
		DurationMins: doc.DurationMins,
		IsActive:     doc.IsActive,
		CreatedAt:    doc.CreatedAt.UTC(),
		UpdatedAt:    doc.UpdatedAt.UTC(),
	}, nil
}
