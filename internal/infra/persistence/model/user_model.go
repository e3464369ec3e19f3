// Package model contains the GORM persistence models and their mapping to
// and from domain entities.
package model

import (
	"time"

	"inkwell/internal/domain/entity"
)

// UserModel mirrors the 'users' table. The primary key is the external
// sign-in uid, not a generated id.
type UserModel struct {
	ID          string  `gorm:"type:varchar(128);primary_key"`
	Email       string  `gorm:"type:varchar(255);index"`
	DisplayName string  `gorm:"type:varchar(255)"`
	PhotoURL    string  `gorm:"type:text"`
	IsSubmitted bool    `gorm:"not null;default:false"`
	IsVoted     bool    `gorm:"not null;default:false"`
	VotedFor    *string `gorm:"type:varchar(160)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain maps the persistence model to a domain entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		PhotoURL:    m.PhotoURL,
		IsSubmitted: m.IsSubmitted,
		IsVoted:     m.IsVoted,
		VotedFor:    m.VotedFor,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// UserFromDomain maps a domain entity to the persistence model.
func UserFromDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		IsSubmitted: u.IsSubmitted,
		IsVoted:     u.IsVoted,
		VotedFor:    u.VotedFor,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
