// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the decoded claims in the request context (see [utils.WithClaims]) before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and a distinct
// code in the following cases:
//   - AUTH_TOKEN_MISSING: no header, or no bearer token in it.
//   - TOKEN_EXPIRED: the token is past its expiry, even if correctly signed.
//   - INVALID_ISSUER: the token was issued by someone else.
//   - INVALID_TOKEN: any other verification failure.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrAuthTokenMissing)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrAuthTokenMissing, err))
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("token rejected")
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}
