package http

import (
	"net/http"
	"time"

	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/utils"
	"github.com/muzaparoff/rest-api-exam/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp := models.HealthResponse{
		Status:    "healthy",
		Message:   "service is up",
		Timestamp: time.Now().UTC(),
		Database:  true,
	}
	status := http.StatusOK

	if err := h.services.UserService.Ping(r.Context()); err != nil {
		log.Err(err).Msg("health check: database unreachable")
		resp.Status = "unhealthy"
		resp.Message = "database unreachable"
		resp.Database = false
		status = http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}
