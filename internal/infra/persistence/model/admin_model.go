package model

import (
	"time"

	"inkwell/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null"`
	LastLogin    time.Time
	CreatedAt    time.Time

	Sessions []SessionModel `gorm:"foreignKey:AdminID"`
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// ToDomain maps the persistence model to a domain entity.
func (m *AdminModel) ToDomain() *entity.Admin {
	return &entity.Admin{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         entity.AdminRole(m.Role),
		LastLogin:    m.LastLogin,
		CreatedAt:    m.CreatedAt,
	}
}

// AdminFromDomain maps a domain entity to the persistence model.
func AdminFromDomain(a *entity.Admin) *AdminModel {
	return &AdminModel{
		ID:           a.ID,
		Email:        a.Email,
		Name:         a.Name,
		PasswordHash: a.PasswordHash,
		Role:         a.Role.String(),
		LastLogin:    a.LastLogin,
		CreatedAt:    a.CreatedAt,
	}
}
