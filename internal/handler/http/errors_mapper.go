package http

import (
	"errors"
	"net/http"

	"github.com/mpolukarov/volna/internal/adapter"
	"github.com/mpolukarov/volna/internal/service"
	"github.com/mpolukarov/volna/internal/store"
	"github.com/mpolukarov/volna/internal/validators"
)

// User-facing messages. Validation and duplicate-account texts are shown
// verbatim by the frontend and stay in the audience's language;
// infrastructure messages stay English.
const (
	msgUsernameTooShort = "Имя пользователя должно содержать минимум 3 символа"
	msgInvalidEmail     = "Некорректный email адрес"
	msgPasswordTooShort = "Пароль должен содержать минимум 8 символов"
	msgPasswordNoUpper  = "Пароль должен содержать хотя бы одну заглавную букву"
	msgPasswordNoLower  = "Пароль должен содержать хотя бы одну строчную букву"
	msgPasswordNoDigit  = "Пароль должен содержать хотя бы одну цифру"
	msgAgeNotConfirmed  = "Вы должны подтвердить, что вам есть 16 лет"
	msgUserExists       = "Пользователь с таким именем или email уже существует"

	msgInvalidJSON        = "Invalid JSON"
	msgMethodNotAllowed   = "Method not allowed"
	msgDBConfigError      = "Database configuration error"
	msgMusicConfigError   = "Music API token not configured"
	msgQueryRequired      = "Query parameter required"
	msgInvalidAction      = "Invalid action"
	msgInternalError      = "Internal server error"
	msgMusicUpstreamError = "Music API error: "
)

type errorResponse struct {
	status  int
	message string
}

// errorResponseMap is the closed error-kind enumeration of the API: every
// sentinel the lower layers can raise is pinned to a status and message here.
// Anything not in the map answers a generic 500 without leaking internals.
var errorResponseMap = map[error]errorResponse{
	validators.ErrUsernameTooShort: {http.StatusBadRequest, msgUsernameTooShort},
	validators.ErrInvalidEmail:     {http.StatusBadRequest, msgInvalidEmail},
	validators.ErrPasswordTooShort: {http.StatusBadRequest, msgPasswordTooShort},
	validators.ErrPasswordNoUpper:  {http.StatusBadRequest, msgPasswordNoUpper},
	validators.ErrPasswordNoLower:  {http.StatusBadRequest, msgPasswordNoLower},
	validators.ErrPasswordNoDigit:  {http.StatusBadRequest, msgPasswordNoDigit},
	validators.ErrAgeNotConfirmed:  {http.StatusBadRequest, msgAgeNotConfirmed},

	store.ErrUserAlreadyExists: {http.StatusBadRequest, msgUserExists},

	service.ErrDatabaseNotConfigured: {http.StatusInternalServerError, msgDBConfigError},
	service.ErrMusicNotConfigured:    {http.StatusInternalServerError, msgMusicConfigError},
	service.ErrQueryRequired:         {http.StatusBadRequest, msgQueryRequired},
	service.ErrInvalidAction:         {http.StatusBadRequest, msgInvalidAction},
}

// responseFromError resolves an error from the service layer to the HTTP
// status and user-facing message of the response body.
//
// Upstream catalog failures keep their original status code and wrap the
// upstream body; all other unclassified errors collapse into a generic 500.
func responseFromError(err error) (int, string) {
	var upstream *adapter.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode, msgMusicUpstreamError + upstream.Body
	}

	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			return response.status, response.message
		}
	}

	return http.StatusInternalServerError, msgInternalError
}
