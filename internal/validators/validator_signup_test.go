package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpolukarov/volna/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Username:     "validuser",
		Email:        "user@example.com",
		Password:     "Abcdefg1",
		AgeConfirmed: true,
	}
}

// ---------------------------------------------------------------------------
// TestNewSignupValidator
// ---------------------------------------------------------------------------

func TestNewSignupValidator(t *testing.T) {
	v := NewSignupValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_AcceptsValueAndPointer(t *testing.T) {
	v := NewSignupValidator()
	ctx := context.Background()

	req := validSignup()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewSignupValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "not a signup"), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewSignupValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), validSignup(), "shoe_size"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Signup rules
// ---------------------------------------------------------------------------

func TestValidate_UsernameTooShort(t *testing.T) {
	v := NewSignupValidator()

	req := validSignup()
	req.Username = "ab"

	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrUsernameTooShort)
}

func TestValidate_InvalidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"no at sign", "not-an-email"},
		{"no tld", "user@example"},
		{"tld too short", "user@example.c"},
		{"empty", ""},
		{"no local part", "@example.com"},
	}

	v := NewSignupValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			req.Email = tt.email

			assert.ErrorIs(t, v.Validate(context.Background(), req), ErrInvalidEmail)
		})
	}
}

func TestValidate_PasswordRules(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"too short", "Ab1", ErrPasswordTooShort},
		{"too short even with all classes", "Abcdef1", ErrPasswordTooShort},
		{"no uppercase", "abcdefg1", ErrPasswordNoUpper},
		{"no lowercase", "ABCDEFG1", ErrPasswordNoLower},
		{"no digit", "Abcdefgh", ErrPasswordNoDigit},
		{"all rules pass", "Abcdefg1", nil},
	}

	v := NewSignupValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			req.Password = tt.password

			err := v.Validate(context.Background(), req)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

// length is checked before character composition, so a short password missing
// every character class still reports the length rule
func TestValidate_PasswordLengthCheckedFirst(t *testing.T) {
	v := NewSignupValidator()

	req := validSignup()
	req.Password = "!!!"

	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrPasswordTooShort)
}

// uppercase is checked before lowercase and digit
func TestValidate_PasswordUppercaseCheckedBeforeOthers(t *testing.T) {
	v := NewSignupValidator()

	req := validSignup()
	req.Password = "????????" // long enough, missing all three classes

	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrPasswordNoUpper)
}

func TestValidate_AgeNotConfirmed(t *testing.T) {
	v := NewSignupValidator()

	req := validSignup()
	req.AgeConfirmed = false

	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrAgeNotConfirmed)
}

// the username rule fires before the email rule even when both are violated
func TestValidate_UsernameCheckedBeforeEmail(t *testing.T) {
	v := NewSignupValidator()

	req := validSignup()
	req.Username = "ab"
	req.Email = "broken"

	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrUsernameTooShort)
}

// field scoping skips rules outside the requested subset
func TestValidate_FieldScoping(t *testing.T) {
	v := NewSignupValidator()

	req := validSignup()
	req.Password = "weak"

	assert.NoError(t, v.Validate(context.Background(), req, FieldUsername, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldPassword), ErrPasswordTooShort)
}
