// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/kalluba/kalluba-funding/internal/config"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(okHandler(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoAddress)
	assert.Nil(t, srv)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}

	srv, err := NewServer(okHandler(), cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Equal(t, config.DefaultShutdownTimeout, s.shutdownTimeout)
	assert.Equal(t, 5*time.Second, s.httpServer.server.ReadTimeout)
	assert.Equal(t, 5*time.Second, s.httpServer.server.WriteTimeout)
	assert.Equal(t, 10*time.Second, s.httpServer.server.IdleTimeout)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(okHandler(), config.Server{
		HTTPAddress:     addr,
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "ok"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(okHandler(), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAndServe")
}
