// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/internal/utils"
	"github.com/kalluba/kalluba-funding/internal/validators"
	"github.com/kalluba/kalluba-funding/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orEmpty(categories), http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.services.CategoryService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

// listProjects serves GET /api/projects?category=&status=&limit=.
// An unknown status is rejected; an unknown category yields [].
func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.ProjectFilter{CategorySlug: query.Get("category")}

	if raw := query.Get("status"); raw != "" {
		status, err := models.ParseProjectStatus(raw)
		if err != nil {
			h.writeError(w, r, validators.NewValidationError("status", "must be one of DRAFT, LIVE, ENDED, FUNDED"))
			return
		}
		filter.Status = &status
	}

	limit, err := queryLimit(query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	filter.Limit = limit

	projects, err := h.services.ProjectService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orEmpty(projects), http.StatusOK)
}

func (h *Handler) featuredProjects(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	projects, err := h.services.ProjectService.Featured(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orEmpty(projects), http.StatusOK)
}

// getProject treats an id that is not a positive integer as an unknown
// project.
func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, r, fmt.Errorf("project id %q: %w", raw, store.ErrProjectNotFound))
		return
	}

	project, err := h.services.ProjectService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	project.Rewards = orEmpty(project.Rewards)
	project.Pledges = orEmpty(project.Pledges)

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := queryLimit(query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	projects, err := h.services.ProjectService.Search(r.Context(), query.Get("q"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orEmpty(projects), http.StatusOK)
}

func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.services.ProjectService.Suggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orEmpty(suggestions), http.StatusOK)
}
