package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateFriendInviteQR generates a QR code that encodes a friend invite link for a user
	GenerateFriendInviteQR(userID uuid.UUID) ([]byte, error)

	// ParseFriendInviteQR parses QR code data and returns the inviting user's ID
	ParseFriendInviteQR(qrData string) (uuid.UUID, error)
}
