// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// The user identity fields are carried next to the standard JWT claims so
// that gated handlers can act on the caller without a store lookup. The
// issuer (iss), issued-at (iat) and expiry (exp) claims come from the
// embedded [jwt.RegisteredClaims].
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`

	jwt.RegisteredClaims
}

// Token is a signed session token together with the claims it carries.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims are the decoded or issued claims of the token.
	Claims Claims `json:"-"`
}

// ExpiresAt returns the expiry of the token, or the zero time when the
// token carries no exp claim.
func (t Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}

	return t.Claims.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
