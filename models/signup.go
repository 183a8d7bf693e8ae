package models

// SignupRequest is the inbound payload of the registration endpoint.
// It is ephemeral: validated, hashed and mapped to a [User], never persisted
// as-is.
type SignupRequest struct {
	// Username is the requested public user name. Minimum 3 characters
	// after trimming whitespace.
	Username string `json:"username"`

	// Email is the address the account is registered with. Must have a
	// local@domain.tld shape.
	Email string `json:"email"`

	// Password is the plaintext password. Minimum 8 characters with at
	// least one uppercase letter, one lowercase letter and one digit.
	// Only its bcrypt hash ever leaves the service layer.
	Password string `json:"password"`

	// AgeConfirmed must be strictly true for the signup to be accepted.
	AgeConfirmed bool `json:"age_confirmed"`

	// FirstName is optional; an empty string after trimming is treated
	// as absent.
	FirstName string `json:"first_name"`

	// LastName is optional; an empty string after trimming is treated
	// as absent.
	LastName string `json:"last_name"`
}
