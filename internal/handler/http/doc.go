// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, metrics and per-client throttling are handled in this package
// before requests are delegated to the service layer. Every failure is
// rendered as a JSON body carrying a human readable message and a stable
// machine readable code.
package http
