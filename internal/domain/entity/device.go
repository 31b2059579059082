// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms. The platform decides which push transport delivers
// to the device: APNs for ios, FCM for android.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// UserDevice represents a device registered for push notifications.
// A push token is globally unique: registering a token that already
// exists reassigns the device to the registering user.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who currently owns this device.
	PushToken string    `json:"push_token"` // APNs device token or FCM registration token.
	Platform  string    `json:"platform"`   // Device platform (ios, android).
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was first registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last registration or ownership change.
}
