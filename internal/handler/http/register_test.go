package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/internal/service"
	"github.com/mpolukarov/volna/internal/store"
	"github.com/mpolukarov/volna/internal/validators"
	"github.com/mpolukarov/volna/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockRegistrationService implements service.RegistrationService for unit
// tests. The method field is overridden per test case.
type mockRegistrationService struct {
	registerFn func(ctx context.Context, req models.SignupRequest) (models.User, error)
}

func (m *mockRegistrationService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

// mockMusicService implements service.MusicService for unit tests.
type mockMusicService struct {
	searchFn  func(ctx context.Context, query string) ([]models.Track, error)
	popularFn func(ctx context.Context) ([]models.Track, error)
}

func (m *mockMusicService) Search(ctx context.Context, query string) ([]models.Track, error) {
	return m.searchFn(ctx, query)
}

func (m *mockMusicService) Popular(ctx context.Context) ([]models.Track, error) {
	return m.popularFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, registration service.RegistrationService, music service.MusicService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		RegistrationService: registration,
		MusicService:        music,
	}, logger.Nop())
}

// signupBody serialises a models.SignupRequest to a JSON request body string.
func signupBody(t *testing.T, req models.SignupRequest) string {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return string(b)
}

// decodeError parses an ErrorResponse body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

var validSignup = models.SignupRequest{
	Username:     "alice",
	Email:        "alice@example.com",
	Password:     "Abcdefg1",
	AgeConfirmed: true,
}

// ─────────────────────────────────────────────
// register — success
// ─────────────────────────────────────────────

func TestRegisterHandler_Success(t *testing.T) {
	registration := &mockRegistrationService{
		registerFn: func(_ context.Context, req models.SignupRequest) (models.User, error) {
			return models.User{
				UserID:       42,
				Username:     req.Username,
				Email:        req.Email,
				PasswordHash: "$2a$10$secret-hash",
				AgeConfirmed: true,
			}, nil
		},
	}

	h := newTestHandler(t, registration, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(signupBody(t, validSignup)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var created models.RegisteredUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)

	// the hash must not surface in the response under any key
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, rec.Body.String(), "password")
}

// ─────────────────────────────────────────────
// register — malformed body
// ─────────────────────────────────────────────

func TestRegisterHandler_InvalidJSON(t *testing.T) {
	registration := &mockRegistrationService{
		registerFn: func(_ context.Context, _ models.SignupRequest) (models.User, error) {
			t.Fatal("service must not be called for malformed JSON")
			return models.User{}, nil
		},
	}

	h := newTestHandler(t, registration, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"username": "alice"`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidJSON, decodeError(t, rec).Error)
}

// ─────────────────────────────────────────────
// register — error mapping
// ─────────────────────────────────────────────

func TestRegisterHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{"username too short", validators.ErrUsernameTooShort, http.StatusBadRequest, msgUsernameTooShort},
		{"invalid email", validators.ErrInvalidEmail, http.StatusBadRequest, msgInvalidEmail},
		{"password too short", validators.ErrPasswordTooShort, http.StatusBadRequest, msgPasswordTooShort},
		{"password missing uppercase", validators.ErrPasswordNoUpper, http.StatusBadRequest, msgPasswordNoUpper},
		{"password missing lowercase", validators.ErrPasswordNoLower, http.StatusBadRequest, msgPasswordNoLower},
		{"password missing digit", validators.ErrPasswordNoDigit, http.StatusBadRequest, msgPasswordNoDigit},
		{"age not confirmed", validators.ErrAgeNotConfirmed, http.StatusBadRequest, msgAgeNotConfirmed},
		{"duplicate account", store.ErrUserAlreadyExists, http.StatusBadRequest, msgUserExists},
		{"database not configured", service.ErrDatabaseNotConfigured, http.StatusInternalServerError, msgDBConfigError},
		{"hashing failure", service.ErrHashingFailed, http.StatusInternalServerError, msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registration := &mockRegistrationService{
				registerFn: func(_ context.Context, _ models.SignupRequest) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			h := newTestHandler(t, registration, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(signupBody(t, validSignup)))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec).Error)
		})
	}
}
