// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kalluba/kalluba-funding/internal/service"
	"github.com/kalluba/kalluba-funding/internal/utils"
	"github.com/kalluba/kalluba-funding/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		parseErr  error
		wantParse bool
		wantCode  string
	}{
		{name: "no header", header: "", wantCode: codeAuthTokenMissing},
		{name: "no scheme", header: "abc.def.ghi", wantCode: codeAuthTokenMissing},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantCode: codeAuthTokenMissing},
		{name: "bearer without token", header: "Bearer ", wantCode: codeAuthTokenMissing},
		{
			name: "expired", header: "Bearer expired.token.value", wantParse: true,
			parseErr: service.ErrTokenExpired, wantCode: codeTokenExpired,
		},
		{
			name: "foreign issuer", header: "Bearer foreign.token.value", wantParse: true,
			parseErr: service.ErrInvalidIssuer, wantCode: codeInvalidIssuer,
		},
		{
			name: "bad signature", header: "Bearer forged.token.value", wantParse: true,
			parseErr: fmt.Errorf("%w: signature is invalid", service.ErrInvalidToken), wantCode: codeInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.wantParse {
				m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Claims{}, tt.parseErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantCode, decodeErrorBody(t, rr).Error)
		})
	}
}

func TestAuthMiddleware_StoresClaims(t *testing.T) {
	h, m := newMockedHandler(t)
	claims := models.Claims{UserID: 5, Email: "amara@kalluba.com", Name: "Amara Nwosu", Role: models.RoleUser}
	m.auth.EXPECT().ParseToken(gomock.Any(), "good.token.value").Return(claims, nil)

	var got models.Claims
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "bearer good.token.value")
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.True(t, ok)
	assert.Equal(t, claims, got)
}
