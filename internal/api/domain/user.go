package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string     // argon2 encoded
	IsActive     bool       // false until OTP verification succeeds
	MFASecret    *string    // TOTP secret (nullable, base32 encoded)
	MFAConfirmed *time.Time // timestamp when a TOTP code was first confirmed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
