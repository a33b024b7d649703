// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Kalluba2025")
	require.NoError(t, err)
	assert.NotEqual(t, "Kalluba2025", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.NoError(t, h.Compare(hash, "Kalluba2025"))
	assert.ErrorIs(t, h.Compare(hash, "kalluba2025"), ErrInvalidCredentials)
}

func TestBcryptHasher_SaltedHashes(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("Kalluba2025")
	require.NoError(t, err)
	second, err := h.Hash("Kalluba2025")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_PlaceholderHashNeverMatches(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	assert.ErrorIs(t, h.Compare("", ""), ErrInvalidCredentials)
	assert.ErrorIs(t, h.Compare("temp-hash", "temp-hash"), ErrInvalidCredentials)
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).(*bcryptHasher).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).(*bcryptHasher).cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash("Aa1" + strings.Repeat("x", 80))

	assert.ErrorIs(t, err, ErrValidation)
}
