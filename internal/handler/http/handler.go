// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/netip"

	"github.com/kalluba/kalluba-funding/internal/config"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/metrics"
	"github.com/kalluba/kalluba-funding/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	throttle *clientThrottle
	// trustedProxies may set the client address through forwarding headers
	trustedProxies []netip.Prefix

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.RateLimit, trustedProxies []netip.Prefix, logger *logger.Logger) *Handler {
	logger.Info().Int("trusted_proxies", len(trustedProxies)).Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		throttle:       newClientThrottle(cfg.AuthRequests, cfg.Window),
		trustedProxies: trustedProxies,
		logger:         logger,
	}
}
