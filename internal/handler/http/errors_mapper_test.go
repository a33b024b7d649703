// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/kalluba/kalluba-funding/internal/service"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", validators.NewValidationError("email", "must be a valid email"), http.StatusBadRequest, codeValidation, "Validation failed"},
		{"search query", service.ErrSearchQueryRequired, http.StatusBadRequest, codeValidation, "Search query is required"},
		{"bad json", fmt.Errorf("%w: unexpected EOF", ErrInvalidRequestBody), http.StatusBadRequest, codeValidation, "Invalid JSON body"},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, codeInvalidCredentials, "Invalid email or password"},
		{"attempts", service.ErrRateLimitExceeded, http.StatusTooManyRequests, codeRateLimitExceeded, "Too many attempts, please try again later"},
		{"throttled", ErrTooManyRequests, http.StatusTooManyRequests, codeRateLimitExceeded, "Too many requests from this IP, please try again later"},
		{"duplicate email", fmt.Errorf("create user: %w", store.ErrEmailAlreadyExists), http.StatusBadRequest, codeUserExists, "User with this email already exists"},
		{"token missing", ErrAuthTokenMissing, http.StatusUnauthorized, codeAuthTokenMissing, "Access token is required"},
		{"token expired", service.ErrTokenExpired, http.StatusUnauthorized, codeTokenExpired, "Token has expired"},
		{"issuer", service.ErrInvalidIssuer, http.StatusUnauthorized, codeInvalidIssuer, "Invalid token issuer"},
		{"bad token", service.ErrInvalidToken, http.StatusUnauthorized, codeInvalidToken, "Invalid token"},
		{"user", store.ErrUserNotFound, http.StatusNotFound, codeNotFound, "User not found"},
		{"category", store.ErrCategoryNotFound, http.StatusNotFound, codeNotFound, "Category not found"},
		{"project", store.ErrProjectNotFound, http.StatusNotFound, codeNotFound, "Project not found"},
		{"reference", store.ErrReferenceNotFound, http.StatusNotFound, codeNotFound, "Referenced entity not found"},
		{"route", ErrRouteNotFound, http.StatusNotFound, codeNotFound, "Not found"},
		{"unknown", errors.New("pq: connection reset by peer"), http.StatusInternalServerError, codeServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := errorResponse(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestErrorResponse_ValidationFields(t *testing.T) {
	err := &validators.ValidationError{Fields: map[string]string{
		"password":        "must be at least 8 characters",
		"confirmPassword": "must match password",
	}}

	_, resp := errorResponse(fmt.Errorf("register: %w", err))

	assert.Equal(t, err.Fields, resp.Fields)
}

func TestErrorResponse_NoFieldsOutsideValidation(t *testing.T) {
	_, resp := errorResponse(service.ErrInvalidCredentials)

	assert.Nil(t, resp.Fields)
}
