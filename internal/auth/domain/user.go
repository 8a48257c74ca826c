package domain

// User represents an authenticated account loaded from seed data.
// Users are immutable after seeding: there is no creation, update, or
// password change flow at runtime.
type User struct {
	Email          string // Unique identifier, compared case-sensitively
	HashedPassword string //nolint:gosec // password digest (bcrypt or argon2id, not plaintext)
	Name           string // Human-readable display name
	Role           Role
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == AdminRole
}

// CanManage reports whether the user may register or unregister the target
// email. Admins manage anyone; consultants only themselves. Emails are
// compared case-sensitively, matching the credential store's lookup rules.
func (u *User) CanManage(targetEmail string) bool {
	if u.IsAdmin() {
		return true
	}
	return u.Email == targetEmail
}
