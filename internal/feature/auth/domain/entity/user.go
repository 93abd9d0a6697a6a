// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// DefaultAvatarURL is the sentinel stored when a user registers without an avatar.
const DefaultAvatarURL = "NoAvatar"

// User represents an administrator account.
// It carries authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name, 3 to 30 characters.
	Name string `gorm:"size:30;not null"`

	// Email is the login identifier. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the password.
	// The raw password is never persisted.
	PasswordHash string `gorm:"size:255;not null"`

	// IsAdmin marks elevated accounts. Registration always stores false.
	IsAdmin bool `gorm:"not null;default:false"`

	// AvatarURL points at the user's avatar, or DefaultAvatarURL when unset.
	AvatarURL string `gorm:"size:512;not null;default:NoAvatar"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
