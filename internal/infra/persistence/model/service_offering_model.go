package model

import (
	"time"

	"autoserv/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceOfferingModel mirrors the 'service_offerings' table.
type ServiceOfferingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Description  string    `gorm:"type:text;not null;default:''"`
	BasePrice    float64   `gorm:"type:numeric(10,2);not null"`
	DurationMins int       `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceOfferingModel) TableName() string {
	return "service_offerings"
}

// ToServiceOfferingEntity converts a persistence model to a domain ServiceOffering.
func ToServiceOfferingEntity(data *ServiceOfferingModel) *entity.ServiceOffering {
	if data == nil {
		return nil
	}

	return &entity.ServiceOffering{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		BasePrice:    data.BasePrice,
		DurationMins: data.DurationMins,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// ToServiceOfferingEntities converts a slice, never returning nil.
func ToServiceOfferingEntities(rows []*ServiceOfferingModel) []*entity.ServiceOffering {
	out := make([]*entity.ServiceOffering, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToServiceOfferingEntity(row))
	}

	return out
}
