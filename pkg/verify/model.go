package verify

import "time"

// Code is one emailed verification code. Codes expire and are single
// use; confirming one marks the investor verified.
type Code struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
