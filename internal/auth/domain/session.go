package domain

import "time"

// LoginOutput contains the result of a successful login.
// The token is stateless: it is never stored server-side and stays valid
// until ExpiresAt regardless of later requests.
type LoginOutput struct {
	Token     string // Signed session token (bearer credential)
	ExpiresAt time.Time
	User      *User
}
