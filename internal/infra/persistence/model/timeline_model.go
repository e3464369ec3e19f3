package model

import (
	"time"

	"inkwell/internal/domain/entity"
)

// TimelineSingletonID is the fixed primary key of the single timeline row.
const TimelineSingletonID = 1

// TimelineModel mirrors the 'timeline' table, which holds exactly one row.
type TimelineModel struct {
	ID                int  `gorm:"primary_key"`
	VotingEnabled     bool `gorm:"not null;default:false"`
	SubmissionEnabled bool `gorm:"not null;default:false"`
	RegistrationStart time.Time
	RegistrationEnd   time.Time
	SubmissionStart   time.Time
	SubmissionEnd     time.Time
	VotingStart       time.Time
	VotingEnd         time.Time
	ResultsDate       time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (TimelineModel) TableName() string {
	return "timeline"
}

// ToDomain maps the persistence model to a domain entity.
func (m *TimelineModel) ToDomain() *entity.Timeline {
	return &entity.Timeline{
		VotingEnabled:     m.VotingEnabled,
		SubmissionEnabled: m.SubmissionEnabled,
		RegistrationStart: m.RegistrationStart,
		RegistrationEnd:   m.RegistrationEnd,
		SubmissionStart:   m.SubmissionStart,
		SubmissionEnd:     m.SubmissionEnd,
		VotingStart:       m.VotingStart,
		VotingEnd:         m.VotingEnd,
		ResultsDate:       m.ResultsDate,
		UpdatedAt:         m.UpdatedAt,
	}
}

// TimelineFromDomain maps a domain entity to the persistence model.
func TimelineFromDomain(t *entity.Timeline) *TimelineModel {
	return &TimelineModel{
		ID:                TimelineSingletonID,
		VotingEnabled:     t.VotingEnabled,
		SubmissionEnabled: t.SubmissionEnabled,
		RegistrationStart: t.RegistrationStart,
		RegistrationEnd:   t.RegistrationEnd,
		SubmissionStart:   t.SubmissionStart,
		SubmissionEnd:     t.SubmissionEnd,
		VotingStart:       t.VotingStart,
		VotingEnd:         t.VotingEnd,
		ResultsDate:       t.ResultsDate,
		UpdatedAt:         t.UpdatedAt,
	}
}
