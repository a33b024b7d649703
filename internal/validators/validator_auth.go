// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/kalluba/kalluba-funding/models"
)

// Field names accepted by [RequestValidator.Validate] to restrict
// validation to a subset of a request's fields.
const (
	FieldName            = "Name"
	FieldEmail           = "Email"
	FieldPassword        = "Password"
	FieldConfirmPassword = "ConfirmPassword"
	FieldBio             = "Bio"
	FieldProfileImageURL = "ProfileImageURL"
)

const minPasswordLength = 8

// RequestValidator implements [Validator] for the auth request models on
// top of go-playground/validator struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the
// "strongpassword" rule registered and JSON field names in errors.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration of a static rule only fails on an empty tag
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate checks models.RegisterRequest and models.LoginRequest (value or
// pointer). When fields are given only those struct fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest, models.LoginRequest, *models.LoginRequest:
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating %T: %w", obj, err)
	}

	result := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if _, seen := result.Fields[fe.Field()]; !seen {
			result.Fields[fe.Field()] = message(fe)
		}
	}

	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	case "eqfield":
		return "passwords don't match"
	case "strongpassword":
		return "must contain at least 8 characters, including uppercase, lowercase, and numbers"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// IsStrongPassword reports whether password has at least 8 characters and
// contains an upper-case letter, a lower-case letter and a digit.
func IsStrongPassword(password string) bool {
	if len([]rune(password)) < minPasswordLength {
		return false
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}
