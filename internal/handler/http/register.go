package http

import (
	"encoding/json"
	"net/http"

	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/internal/utils"
	"github.com/mpolukarov/volna/models"
)

// register handles POST /api/user/register.
//
// The body is a [models.SignupRequest]; on success the created account's
// public fields are returned with 201. Every failure is mapped to a specific
// status and user-facing message by responseFromError. The password hash
// never appears in any response.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.RegistrationService.Register(ctx, req)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Int("status", status).Msg("registration failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	utils.WriteJSON(w, models.NewRegisteredUser(user), http.StatusCreated)
}
