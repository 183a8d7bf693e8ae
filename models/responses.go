package models

import "time"

// RegisteredUser is the public projection of a freshly created account
// returned by the registration endpoint. It intentionally carries no
// credential data.
type RegisteredUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRegisteredUser maps a persisted [User] to its public projection.
func NewRegisteredUser(user User) RegisteredUser {
	return RegisteredUser{
		ID:        user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

// ErrorResponse is the JSON envelope of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
