// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Theme values allowed for User.Theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User represents a registered user in the system.
// It carries the authentication credentials plus the per-user display
// preferences consumed by the settings feature.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is compared verbatim (case-sensitive).
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Theme is the preferred UI theme, either "light" or "dark".
	Theme string `gorm:"size:16;not null;default:light"`

	// EmailNotifications enables email notification delivery.
	EmailNotifications bool `gorm:"not null;default:true"`

	// PushNotifications enables push notification delivery.
	PushNotifications bool `gorm:"not null;default:true"`

	// Language is the preferred display language label.
	Language string `gorm:"size:64;not null;default:English"`

	// Currency is the preferred display currency code (e.g. "USD").
	// It is a display label only; no conversion happens server-side.
	Currency string `gorm:"size:8;not null;default:USD"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
