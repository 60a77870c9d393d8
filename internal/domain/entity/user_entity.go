package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
// Phone is stored digits-only (normalized at registration).
type User struct {
	ID                    int64
	Phone                 string
	PasswordHash          string
	NotificationFrequency string
	HasHatched            bool
	Coins                 int
	CreatedAt             time.Time
}

// Settings is the user-economy view of a User: preferences plus the
// collections backed by the user_animals and user_items tables.
type Settings struct {
	NotificationFrequency string          `json:"notification_frequency"`
	HasHatched            bool            `json:"has_hatched"`
	Animals               []string        `json:"animals"`
	Items                 []InventoryItem `json:"items"`
	Coins                 int             `json:"coins"`
}
