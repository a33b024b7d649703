// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/service"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/internal/utils"
	"github.com/kalluba/kalluba-funding/internal/validators"
	"github.com/kalluba/kalluba-funding/models"
)

// Machine readable error codes sent in the "error" field of every error body.
const (
	codeValidation         = "VALIDATION_ERROR"
	codeNotFound           = "NOT_FOUND"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	codeUserExists         = "USER_EXISTS"
	codeAuthTokenMissing   = "AUTH_TOKEN_MISSING"
	codeInvalidToken       = "INVALID_TOKEN"
	codeTokenExpired       = "TOKEN_EXPIRED"
	codeInvalidIssuer      = "INVALID_ISSUER"
	codeServerError        = "SERVER_ERROR"
)

type errorRule struct {
	target  error
	status  int
	code    string
	message string
}

// errorRules is ordered: the first matching target wins, so more specific
// errors come before the sentinels they wrap.
var errorRules = []errorRule{
	{service.ErrSearchQueryRequired, http.StatusBadRequest, codeValidation, "Search query is required"},
	{ErrInvalidRequestBody, http.StatusBadRequest, codeValidation, "Invalid JSON body"},
	{service.ErrValidation, http.StatusBadRequest, codeValidation, "Validation failed"},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, codeInvalidCredentials, "Invalid email or password"},
	{service.ErrRateLimitExceeded, http.StatusTooManyRequests, codeRateLimitExceeded, "Too many attempts, please try again later"},
	{ErrTooManyRequests, http.StatusTooManyRequests, codeRateLimitExceeded, "Too many requests from this IP, please try again later"},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, codeUserExists, "User with this email already exists"},

	{ErrAuthTokenMissing, http.StatusUnauthorized, codeAuthTokenMissing, "Access token is required"},
	{service.ErrTokenExpired, http.StatusUnauthorized, codeTokenExpired, "Token has expired"},
	{service.ErrInvalidIssuer, http.StatusUnauthorized, codeInvalidIssuer, "Invalid token issuer"},
	{service.ErrInvalidToken, http.StatusUnauthorized, codeInvalidToken, "Invalid token"},

	{store.ErrUserNotFound, http.StatusNotFound, codeNotFound, "User not found"},
	{store.ErrCategoryNotFound, http.StatusNotFound, codeNotFound, "Category not found"},
	{store.ErrProjectNotFound, http.StatusNotFound, codeNotFound, "Project not found"},
	{store.ErrReferenceNotFound, http.StatusNotFound, codeNotFound, "Referenced entity not found"},
	{ErrRouteNotFound, http.StatusNotFound, codeNotFound, "Not found"},
}

// errorResponse maps err to an HTTP status and an error body. Unknown
// errors become a 500 whose body never reveals the cause.
func errorResponse(err error) (int, models.ErrorResponse) {
	for _, rule := range errorRules {
		if !errors.Is(err, rule.target) {
			continue
		}

		resp := models.ErrorResponse{Message: rule.message, Error: rule.code}
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			resp.Fields = validationErr.Fields
		}

		return rule.status, resp
	}

	return http.StatusInternalServerError, models.ErrorResponse{Message: "Internal server error", Error: codeServerError}
}

func statusFromError(err error) int {
	status, _ := errorResponse(err)
	return status
}

// writeError renders err as a JSON error body. Server errors are logged
// with the cause; client errors only at debug level.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, resp := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Str("code", resp.Error).Msg("request rejected")
	}

	if _, err = utils.WriteJSON(w, resp, status); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}
