package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/mpolukarov/volna/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the account name of a signup request.
	FieldUsername = "username"

	// FieldEmail targets the email address of a signup request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a signup request.
	FieldPassword = "password"

	// FieldAgeConfirmed targets the age confirmation checkbox flag.
	FieldAgeConfirmed = "age_confirmed"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	uppercaseLetter = regexp.MustCompile(`[A-Z]`)
	lowercaseLetter = regexp.MustCompile(`[a-z]`)
	decimalDigit    = regexp.MustCompile(`\d`)
)

// SignupValidator implements the Validator interface for signup requests.
// It accepts both value and pointer forms of models.SignupRequest and allows
// optional field-level scoping via variadic field name arguments.
type SignupValidator struct {
}

// NewSignupValidator constructs a new SignupValidator and returns it as the
// Validator interface.
func NewSignupValidator() Validator {
	return &SignupValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.SignupRequest / *models.SignupRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted, all
// fields are validated in their default order.
func (v *SignupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignup checks the signup rules and returns the sentinel of the
// first violated rule. The request is expected to be normalized (trimmed)
// already. Lengths count runes, not bytes.
//
// Default order of evaluation:
//  1. username length
//  2. email shape
//  3. password length, uppercase, lowercase, digit (in that order)
//  4. age confirmation
func (v *SignupValidator) validateSignup(_ context.Context, req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldAgeConfirmed}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if utf8.RuneCountInString(req.Username) < minUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldEmail:
			if !emailPattern.MatchString(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		case FieldAgeConfirmed:
			if !req.AgeConfirmed {
				return ErrAgeNotConfirmed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePassword applies the four password rules, first violation wins.
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if !uppercaseLetter.MatchString(password) {
		return ErrPasswordNoUpper
	}

	if !lowercaseLetter.MatchString(password) {
		return ErrPasswordNoLower
	}

	if !decimalDigit.MatchString(password) {
		return ErrPasswordNoDigit
	}

	return nil
}
