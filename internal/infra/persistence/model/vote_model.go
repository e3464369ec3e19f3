package model

import (
	"time"

	"inkwell/internal/domain/entity"
)

// VoteModel mirrors the 'votes' table. The unique key on VoterID enforces
// one active vote per user at the store level, independent of the flag on
// the user row.
type VoteModel struct {
	ID          string `gorm:"type:varchar(320);primary_key"`
	VoterID     string `gorm:"type:varchar(128);uniqueIndex;not null"`
	EntryID     string `gorm:"type:varchar(160);index;not null"`
	EntryAuthor string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoteModel) TableName() string {
	return "votes"
}

// ToDomain maps the persistence model to a domain entity.
func (m *VoteModel) ToDomain() *entity.VoteRecord {
	return &entity.VoteRecord{
		ID:          m.ID,
		VoterID:     m.VoterID,
		EntryID:     m.EntryID,
		EntryAuthor: m.EntryAuthor,
		CreatedAt:   m.CreatedAt,
	}
}

// VoteFromDomain maps a domain entity to the persistence model.
func VoteFromDomain(v *entity.VoteRecord) *VoteModel {
	return &VoteModel{
		ID:          v.ID,
		VoterID:     v.VoterID,
		EntryID:     v.EntryID,
		EntryAuthor: v.EntryAuthor,
		CreatedAt:   v.CreatedAt,
	}
}
