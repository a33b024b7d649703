// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestWithClientIP(t *testing.T) {
	proxies := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}

	tests := []struct {
		name       string
		proxies    []netip.Prefix
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "no proxies configured", remoteAddr: "203.0.113.4:5000", forwarded: "198.51.100.1", want: "203.0.113.4:5000"},
		{name: "untrusted peer", proxies: proxies, remoteAddr: "203.0.113.4:5000", forwarded: "198.51.100.1", want: "203.0.113.4:5000"},
		{name: "trusted peer", proxies: proxies, remoteAddr: "10.1.1.1:5000", forwarded: "198.51.100.1", want: "198.51.100.1"},
		{name: "trusted peer without header", proxies: proxies, remoteAddr: "10.1.1.1:5000", want: "10.1.1.1:5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), trustedProxies: tt.proxies}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			var got string
			h.withClientIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			})).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}
