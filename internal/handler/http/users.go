// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/service"
	"github.com/muzaparoff/rest-api-exam/internal/utils"
	"github.com/muzaparoff/rest-api-exam/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided, "")
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		log.Err(err).Str("id", req.ID).Msg("user creation failed")
		writeError(w, r, err, req.ID)
		return
	}

	log.Info().Str("id", user.ID).Str("actor", actorFromContext(ctx)).Msg("user created")

	if _, err = utils.WriteJSON(w, user, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing create response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user lookup failed")
		writeError(w, r, err, id)
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user response")
	}
}

// getUsers serves GET /users: the flat list of every stored id.
func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ids, err := h.services.UserService.ListUserIDs(ctx)
	if err != nil {
		log.Err(err).Msg("user id listing failed")
		writeError(w, r, err, "")
		return
	}

	if ids == nil {
		ids = []string{}
	}
	if _, err = utils.WriteJSON(w, ids, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user ids response")
	}
}

func (h *Handler) listUsersDetailed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))
	search := query.Get("search")

	list, err := h.services.UserService.ListUsers(ctx, search, page, perPage)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, r, err, "")
		return
	}

	if list.Users == nil {
		list.Users = []models.User{}
	}
	if _, err = utils.WriteJSON(w, list, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing listing response")
	}
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var req models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided, "")
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, id, req)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update failed")
		writeError(w, r, err, id)
		return
	}

	log.Info().Str("id", user.ID).Str("actor", actorFromContext(ctx)).Msg("user updated")

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing update response")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("user deletion failed")
		writeError(w, r, err, id)
		return
	}

	log.Info().Str("id", id).Str("actor", actorFromContext(ctx)).Msg("user deleted")
	w.WriteHeader(http.StatusNoContent)
}
