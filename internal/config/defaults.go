// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress          = "localhost:5000"
	DefaultTokenIssuer          = "kalluba"
	DefaultTokenDuration        = 7 * 24 * time.Hour
	DefaultPasswordHashCost     = 12
	DefaultVersion              = "dev"
	DefaultLogLevel             = "info"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultRateLimitWindow      = 15 * time.Minute
	DefaultLoginAttempts        = 5
	DefaultRegistrationAttempts = 3
	DefaultAuthRequests         = 100
)

// defaults returns the lowest-priority config source. The token sign key
// has no default.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			Version:          DefaultVersion,
			LogLevel:         DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		RateLimit: RateLimit{
			Window:               DefaultRateLimitWindow,
			LoginAttempts:        DefaultLoginAttempts,
			RegistrationAttempts: DefaultRegistrationAttempts,
			AuthRequests:         DefaultAuthRequests,
		},
	}
}
