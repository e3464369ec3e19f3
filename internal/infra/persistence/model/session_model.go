package model

import (
	"time"

	"inkwell/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'admin_sessions' table. Only the SHA-256 hash of
// a session token is stored; the raw token never touches the database.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	AdminID   uuid.UUID `gorm:"type:uuid;index;not null"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "admin_sessions"
}

// ToDomain maps the persistence model to a domain entity.
func (m *SessionModel) ToDomain() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		AdminID:   m.AdminID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// SessionFromDomain maps a domain entity to the persistence model.
func SessionFromDomain(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        s.ID,
		AdminID:   s.AdminID,
		TokenHash: s.TokenHash,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}
