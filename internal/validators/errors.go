package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Signup rule violations. Each sentinel maps to a specific user-facing
// message at the HTTP boundary. Rules are evaluated in a fixed order and the
// first violated rule wins.
var (
	// ErrUsernameTooShort indicates a username shorter than 3 characters
	// after trimming.
	ErrUsernameTooShort = errors.New("username is shorter than 3 characters")

	// ErrInvalidEmail indicates an email without a local@domain.tld shape.
	ErrInvalidEmail = errors.New("email address is malformed")

	// ErrPasswordTooShort indicates a password shorter than 8 characters.
	ErrPasswordTooShort = errors.New("password is shorter than 8 characters")

	// ErrPasswordNoUpper indicates a password without an uppercase letter.
	ErrPasswordNoUpper = errors.New("password has no uppercase letter")

	// ErrPasswordNoLower indicates a password without a lowercase letter.
	ErrPasswordNoLower = errors.New("password has no lowercase letter")

	// ErrPasswordNoDigit indicates a password without a digit.
	ErrPasswordNoDigit = errors.New("password has no digit")

	// ErrAgeNotConfirmed indicates the age confirmation flag was not
	// strictly true.
	ErrAgeNotConfirmed = errors.New("age is not confirmed")
)
