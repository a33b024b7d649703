// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kalluba/kalluba-funding/models"
)

// Errors returned by [ValidateAndParseJWTToken].
var (
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalidIssuer = errors.New("token issuer mismatch")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header")
)

// GenerateJWTToken signs claims with HMAC-SHA256 after stamping the
// registered claims:
//   - Issuer    (iss): issuer
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// issuer, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(claims, "kalluba", 7*24*time.Hour, "secret", time.Now())
func GenerateJWTToken(claims models.Claims, issuer string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken verifies the HS256 signature and expiry of
// tokenString and checks that its issuer equals tokenIssuer.
//
// Failures are reported as [ErrTokenExpired], [ErrTokenInvalidIssuer] (also
// for a token without an issuer) or [ErrTokenInvalid]. Expiry is checked
// before the issuer. now supplies the validation time.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrTokenExpired
	case err != nil:
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.Issuer != tokenIssuer {
		return models.Token{}, ErrTokenInvalidIssuer
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}
