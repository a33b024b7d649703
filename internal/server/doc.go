// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the kalluba HTTP API.
//
// It owns the [http.Server] lifecycle: startup, signal handling and a
// bounded graceful shutdown.
package server
