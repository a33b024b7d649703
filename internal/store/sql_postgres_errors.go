// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrReferenceNotFound is returned when a row references a user, category,
// project or reward that does not exist.
var ErrReferenceNotFound = errors.New("referenced entity not found")

// postgresError returns the SQLSTATE code of err, or "" if err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// mapWriteError translates constraint violations of an INSERT or UPDATE
// into domain errors. onUnique is returned for unique violations.
func mapWriteError(err error, onUnique error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		if onUnique != nil {
			return onUnique
		}
	case pgerrcode.ForeignKeyViolation:
		return ErrReferenceNotFound
	case pgerrcode.CheckViolation:
		return ErrNegativeAmount
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
