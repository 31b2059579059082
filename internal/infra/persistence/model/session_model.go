package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. A NULL ended_at marks the
// session as still active.
type SessionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title     string     `gorm:"type:varchar(120);not null"`
	Message   string     `gorm:"type:text"`
	StartedAt time.Time  `gorm:"not null"`
	EndedAt   *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Responses []SessionResponseModel `gorm:"foreignKey:SessionID"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// SessionResponseModel mirrors the 'session_responses' table. Each responder
// gets at most one row per session.
type SessionResponseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SessionID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_responses_session_responder"`
	ResponderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_responses_session_responder"`
	Kind        string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionResponseModel) TableName() string {
	return "session_responses"
}
