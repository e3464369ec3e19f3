package model

import (
	"time"

	"inkwell/internal/domain/entity"
)

// EntryModel mirrors the 'entries' table. Both the derived id and the owner
// column carry unique keys, so a racing double submit surfaces as a
// constraint violation instead of an overwrite. The voter set is the set of
// vote rows referencing the entry.
type EntryModel struct {
	ID         string `gorm:"type:varchar(160);primary_key"`
	UserID     string `gorm:"type:varchar(128);uniqueIndex;not null"`
	AuthorName string `gorm:"type:varchar(255);not null"`
	Year       string `gorm:"type:varchar(32)"`
	Branch     string `gorm:"type:varchar(128)"`
	Title      string `gorm:"type:varchar(512);not null"`
	Content    string `gorm:"type:text;not null"`
	Votes      int    `gorm:"not null;default:0"`
	Status     string `gorm:"type:varchar(16);not null;default:'pending';index"`
	UpdatedBy  string `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	VoteRows []VoteModel `gorm:"foreignKey:EntryID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "entries"
}

// ToDomain maps the persistence model to a domain entity, deriving the voter
// set from the preloaded vote rows.
func (m *EntryModel) ToDomain() *entity.Entry {
	voters := make([]string, 0, len(m.VoteRows))
	for _, v := range m.VoteRows {
		voters = append(voters, v.VoterID)
	}

	return &entity.Entry{
		ID:         m.ID,
		UserID:     m.UserID,
		AuthorName: m.AuthorName,
		Year:       m.Year,
		Branch:     m.Branch,
		Title:      m.Title,
		Content:    m.Content,
		Votes:      m.Votes,
		Voters:     voters,
		Status:     entity.EntryStatus(m.Status),
		UpdatedBy:  m.UpdatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// EntryFromDomain maps a domain entity to the persistence model. The voter
// set is not mapped back; vote rows are written through the vote repository.
func EntryFromDomain(e *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:         e.ID,
		UserID:     e.UserID,
		AuthorName: e.AuthorName,
		Year:       e.Year,
		Branch:     e.Branch,
		Title:      e.Title,
		Content:    e.Content,
		Votes:      e.Votes,
		Status:     e.Status.String(),
		UpdatedBy:  e.UpdatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
