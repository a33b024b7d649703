// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kalluba/kalluba-funding/internal/config"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/service"
	"github.com/kalluba/kalluba-funding/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler returns a bare Handler whose logger discards output.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "incoming id is echoed", incoming: "kalluba-trace-7"},
		{name: "missing id is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()

			newTestHandler().withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			got := rr.Header().Get(traceIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, got)
		})
	}
}

func TestWithTraceID_LogLinesCarryTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set(traceIDHeader, "kalluba-trace-1")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"kalluba-trace-1"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

// Error responses produced deeper in the chain still carry the trace id.
func TestWithTraceID_OnRouterErrors(t *testing.T) {
	t.Run("auth gate 401", func(t *testing.T) {
		h, _ := newMockedHandler(t)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set(traceIDHeader, "trace-401")

		rr := serve(h, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "trace-401", rr.Header().Get(traceIDHeader))
	})

	t.Run("throttle 429", func(t *testing.T) {
		limits := config.RateLimit{Window: time.Hour, LoginAttempts: 5, RegistrationAttempts: 3, AuthRequests: 1}
		h, m := newMockedHandlerWithLimits(t, limits)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), testClientIP).Return(models.AuthResult{}, service.ErrInvalidCredentials)

		body := `{"email":"amara@kalluba.com","password":"wrong"}`
		serve(h, jsonRequest(http.MethodPost, "/api/auth/login", body))

		rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/login", body))

		require.Equal(t, http.StatusTooManyRequests, rr.Code)
		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})

	t.Run("unknown route 404", func(t *testing.T) {
		h, _ := newMockedHandler(t)
		req := httptest.NewRequest(http.MethodGet, "/api/nowhere", nil)
		req.Header.Set(traceIDHeader, "trace-404")

		rr := serve(h, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "trace-404", rr.Header().Get(traceIDHeader))
	})
}
