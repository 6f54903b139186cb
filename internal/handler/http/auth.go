package http

import (
	"encoding/json"
	"net/http"

	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/service"
	"github.com/muzaparoff/rest-api-exam/internal/utils"
	"github.com/muzaparoff/rest-api-exam/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided, "")
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login failed")
		writeError(w, r, err, "")
		return
	}

	log.Debug().Str("username", token.Username).Msg("user successfully logged in")

	resp := models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.services.AuthService.TokenDurationSeconds()),
	}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}
