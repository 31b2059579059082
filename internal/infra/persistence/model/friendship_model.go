package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel mirrors the 'friendships' table. One row exists per pair,
// keyed on the direction the request was sent in.
type FriendshipModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair;index"`
	AddresseeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}
