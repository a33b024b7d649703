// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthResult is returned by a successful login or registration.
type AuthResult struct {
	// Token is the signed session token to be sent back as
	// "Authorization: Bearer <token>".
	Token string `json:"token"`

	// User is the authenticated account; the password hash is never
	// serialized.
	User User `json:"user"`

	Meta AuthMeta `json:"meta"`
}

// AuthMeta carries token metadata alongside an [AuthResult].
type AuthMeta struct {
	TokenExpiry time.Time `json:"tokenExpiry"`

	// UserID is only set on registration responses.
	UserID int64 `json:"userId,omitempty"`
}

// ErrorResponse is the body of every 4xx/5xx JSON response.
type ErrorResponse struct {
	// Message is a human readable description of the failure.
	Message string `json:"message"`

	// Error is a stable machine readable code (e.g. "TOKEN_EXPIRED").
	Error string `json:"error"`

	// Fields holds per-field validation messages, keyed by JSON field name.
	Fields map[string]string `json:"fields,omitempty"`
}
