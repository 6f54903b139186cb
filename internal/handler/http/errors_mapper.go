// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/service"
	"github.com/muzaparoff/rest-api-exam/internal/store"
	"github.com/muzaparoff/rest-api-exam/internal/utils"
	"github.com/muzaparoff/rest-api-exam/internal/validators"
	"github.com/muzaparoff/rest-api-exam/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrInactiveAccount:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists:  http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrCredentialNotFound: http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if validators.AsValidationError(err) != nil {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorCategory is the stable machine-readable label clients branch on.
func errorCategory(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "ValidationError"
	case http.StatusUnauthorized:
		return "AuthenticationError"
	case http.StatusNotFound:
		return "NotFoundError"
	case http.StatusConflict:
		return "ConflictError"
	default:
		return "InternalError"
	}
}

// writeError maps err to an HTTP status and renders the uniform
// models.ErrorResponse body. resourceID names the record a not-found or
// conflict error refers to; pass "" when the error is not about one record.
//
// Internal errors are reported with a generic message so storage details
// never leak to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error, resourceID string) {
	status := statusFromError(err)

	resp := models.ErrorResponse{
		Error:     errorCategory(status),
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
		Path:      r.URL.Path,
		RequestID: w.Header().Get(traceIDHeader),
	}

	if ve := validators.AsValidationError(err); ve != nil {
		resp.Message = ve.Message
		resp.ValidationErrors = ve.Fields
	}

	if resourceID != "" && (status == http.StatusNotFound || status == http.StatusConflict) {
		resp.ResourceType = "user"
		resp.ResourceID = resourceID
	}

	if status == http.StatusInternalServerError {
		resp.Message = http.StatusText(http.StatusInternalServerError)
	}

	if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing error response")
	}
}
