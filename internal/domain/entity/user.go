// Package entity holds the forum's plain data types.
package entity

// User is a forum member. Email is the login identifier and is unique (case-sensitive).
type User struct {
	ID       int64  // Store-assigned identifier.
	Name     string // Display name; never shown on anonymous posts or on comments.
	Email    string // Unique login identifier.
	Password string // Self-describing password hash, see service.PasswordHasher.
}

// Credential is the stored password of a single user, as read by the credential migrator.
type Credential struct {
	UserID   int64
	Password string
}
