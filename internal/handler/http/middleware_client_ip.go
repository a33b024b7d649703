// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/kalluba/kalluba-funding/internal/utils"
)

// withClientIP rewrites r.RemoteAddr to the forwarded client address when
// the request arrived through a trusted proxy. Requests from other peers
// keep their socket address, so rate-limit keys cannot be picked by the
// client.
func (h *Handler) withClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.trustedProxies) > 0 {
			if client := utils.ForwardedClientIP(r, h.trustedProxies); client != utils.ClientIP(r) {
				r.RemoteAddr = client
			}
		}

		next.ServeHTTP(w, r)
	})
}
