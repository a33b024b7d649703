// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/kalluba/kalluba-funding/internal/validators"
)

var (
	// ErrValidation is matched by every input validation failure.
	ErrValidation = validators.ErrValidation

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRateLimitExceeded  = errors.New("too many attempts, please try again later")

	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidIssuer       = errors.New("invalid token issuer")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrSearchQueryRequired = fmt.Errorf("%w: search query is required", ErrValidation)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
