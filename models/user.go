// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level of a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a marketplace account: a creator who owns projects and
// a backer who owns pledges.
//
// PasswordHash is never serialized; every JSON response built from a User
// is therefore safe to send to clients as-is.
type User struct {
	// ID is the store-assigned identifier.
	ID int64 `json:"id"`

	// Name is the display name shown on project pages.
	Name string `json:"name"`

	// Email is the unique login identifier. Lookups are exact and
	// case-sensitive.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// Bio is an optional short description; empty when not provided.
	Bio string `json:"bio"`

	// ProfileImageURL is an optional avatar URL; empty when not provided.
	ProfileImageURL string `json:"profileImageUrl"`

	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
