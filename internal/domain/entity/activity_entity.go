package entity

import "time"

// Activity is a single "I did X, felt Y%" ledger entry.
// Happiness is always within [0,100]; the range is validated at the
// service layer and enforced again by a CHECK constraint.
type Activity struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Happiness int       `json:"happiness"`
	CreatedAt time.Time `json:"created_at"`
}
