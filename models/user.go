package models

import "time"

// User represents a registered account entity persisted in the "users" table.
// It contains identity attributes and the credential hash.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database at creation time and immutable afterwards.
	UserID int64 `json:"-"`

	// Username is the unique public user name.
	// Uniqueness is enforced both by a pre-insert check and by a database
	// constraint.
	Username string `json:"username"`

	// Email is the unique email address the account was registered with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and it is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// FirstName is an optional display name component.
	// Nil means the user did not supply one; stored as NULL.
	FirstName *string `json:"first_name"`

	// LastName is an optional display name component.
	// Nil means the user did not supply one; stored as NULL.
	LastName *string `json:"last_name"`

	// AgeConfirmed records that the user confirmed the minimum age
	// requirement during signup. Always true for persisted records.
	AgeConfirmed bool `json:"age_confirmed"`

	// CreatedAt is the timestamp when the account was created.
	// Assigned by the database and immutable afterwards.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
