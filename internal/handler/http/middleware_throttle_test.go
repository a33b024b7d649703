// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/netip"
	"testing"
	"time"

	"github.com/kalluba/kalluba-funding/internal/config"
	"github.com/kalluba/kalluba-funding/internal/service"
	"github.com/kalluba/kalluba-funding/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestClientThrottle_Allow(t *testing.T) {
	throttle := newClientThrottle(2, time.Hour)

	assert.True(t, throttle.allow("198.51.100.1"))
	assert.True(t, throttle.allow("198.51.100.1"))
	assert.False(t, throttle.allow("198.51.100.1"))

	// other clients keep their own budget
	assert.True(t, throttle.allow("198.51.100.2"))
}

func TestClientThrottle_Unlimited(t *testing.T) {
	for _, throttle := range []*clientThrottle{newClientThrottle(-1, time.Minute), newClientThrottle(0, time.Minute), newClientThrottle(10, 0)} {
		for range 1000 {
			assert.True(t, throttle.allow("198.51.100.1"))
		}
	}
}

func TestClientThrottle_DropsTableWhenFull(t *testing.T) {
	throttle := newClientThrottle(1, time.Hour)

	assert.True(t, throttle.allow("first"))
	assert.False(t, throttle.allow("first"))

	for i := range maxThrottledClients - 1 {
		throttle.allow(fmt.Sprintf("client-%d", i))
	}
	assert.Len(t, throttle.limiters, maxThrottledClients)

	assert.True(t, throttle.allow("one-too-many"))
	assert.Len(t, throttle.limiters, 1)

	// "first" starts over with a fresh bucket
	assert.True(t, throttle.allow("first"))
}

func TestWithThrottle_AuthRoutes(t *testing.T) {
	limits := config.RateLimit{Window: time.Hour, LoginAttempts: 5, RegistrationAttempts: 3, AuthRequests: 2}
	h, m := newMockedHandlerWithLimits(t, limits)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), testClientIP).
		Return(models.AuthResult{}, service.ErrInvalidCredentials).Times(2)

	body := `{"email":"amara@kalluba.com","password":"wrong"}`
	for range 2 {
		rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/login", body))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	}

	rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/login", body))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	resp := decodeErrorBody(t, rr)
	assert.Equal(t, codeRateLimitExceeded, resp.Error)
	assert.Equal(t, "Too many requests from this IP, please try again later", resp.Message)

	assert.Contains(t, scrapeMetrics(t, h), "kalluba_http_throttled_requests_total 1")
}

func TestWithThrottle_ForwardedForDoesNotResetBudget(t *testing.T) {
	limits := config.RateLimit{Window: time.Hour, LoginAttempts: 5, RegistrationAttempts: 3, AuthRequests: 2}
	h, m := newMockedHandlerWithLimits(t, limits)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), testClientIP).
		Return(models.AuthResult{}, service.ErrInvalidCredentials).Times(2)

	body := `{"email":"amara@kalluba.com","password":"wrong"}`
	codes := make([]int, 0, 4)
	for i := range 4 {
		req := jsonRequest(http.MethodPost, "/api/auth/login", body)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
		codes = append(codes, serve(h, req).Code)
	}

	assert.Equal(t, []int{
		http.StatusUnauthorized,
		http.StatusUnauthorized,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)
}

func TestWithThrottle_TrustedProxyClientsHaveOwnBudget(t *testing.T) {
	limits := config.RateLimit{Window: time.Hour, LoginAttempts: 5, RegistrationAttempts: 3, AuthRequests: 1}
	h, m := newMockedHandlerWithProxies(t, limits, []netip.Prefix{netip.MustParsePrefix("192.0.2.0/24")})
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), "198.51.100.1").Return(models.AuthResult{}, service.ErrInvalidCredentials)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), "198.51.100.2").Return(models.AuthResult{}, service.ErrInvalidCredentials)

	body := `{"email":"amara@kalluba.com","password":"wrong"}`
	send := func(client string) int {
		req := jsonRequest(http.MethodPost, "/api/auth/login", body)
		req.Header.Set("X-Forwarded-For", client)
		return serve(h, req).Code
	}

	assert.Equal(t, http.StatusUnauthorized, send("198.51.100.1"))
	assert.Equal(t, http.StatusUnauthorized, send("198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
}

func TestWithThrottle_Disabled(t *testing.T) {
	limits := config.RateLimit{Window: time.Hour, LoginAttempts: 5, RegistrationAttempts: 3, AuthRequests: -1}
	h, m := newMockedHandlerWithLimits(t, limits)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), testClientIP).
		Return(models.AuthResult{}, service.ErrInvalidCredentials).Times(20)

	body := `{"email":"amara@kalluba.com","password":"wrong"}`
	for range 20 {
		assert.Equal(t, http.StatusUnauthorized, serve(h, jsonRequest(http.MethodPost, "/api/auth/login", body)).Code)
	}
}

func TestWithThrottle_CatalogNotThrottled(t *testing.T) {
	limits := config.RateLimit{Window: time.Hour, AuthRequests: 1}
	h, m := newMockedHandlerWithLimits(t, limits)
	m.categories.EXPECT().List(gomock.Any()).Return(nil, nil).Times(3)

	for range 3 {
		rr := serve(h, jsonRequest(http.MethodGet, "/api/categories", ""))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
