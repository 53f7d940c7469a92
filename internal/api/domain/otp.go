package domain

import "time"

// UserOTP is a one-time passcode for account activation. A code is valid only
// while active and unexpired, and is consumed (deactivated) by a successful
// verification.
type UserOTP struct {
	ID        string
	UserID    string
	Code      string
	IsActive  bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
