// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrAuthTokenMissing is returned by the auth middleware when the request
	// carries no usable "Authorization: Bearer <token>" header.
	ErrAuthTokenMissing = errors.New("authentication token is missing")

	// ErrInvalidRequestBody is returned when the request body is not valid
	// JSON for the expected shape.
	ErrInvalidRequestBody = errors.New("invalid JSON body")

	// ErrTooManyRequests is returned by the per-client request throttle.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrRouteNotFound is returned for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")
)
