// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/metrics"
	"github.com/kalluba/kalluba-funding/internal/utils"
	"github.com/kalluba/kalluba-funding/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), req, utils.ClientIP(r))
	h.metrics.RecordAuth("register", authOutcome(err))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req, utils.ClientIP(r))
	h.metrics.RecordAuth("login", authOutcome(err))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", result.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, result, http.StatusOK)
}

// me returns the account of the authenticated caller.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrAuthTokenMissing)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, claims)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func authOutcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	switch status := statusFromError(err); {
	case status == http.StatusTooManyRequests:
		return metrics.OutcomeRateLimited
	case status < http.StatusInternalServerError:
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
