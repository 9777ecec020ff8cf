// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package routes registers the demo endpoints served by the local emulator
// and the invoke CLI:
//
//	GET  /health    build and version information
//	GET  /auth      the parsed Authorization header
//	GET  /client    the edge-proxy viewer context
//	GET  /whoami    the subject of a verified Bearer JWT
//	GET  /modified  Last-Modified from the "since" query parameter
//	GET  /cors      CORS headers from the configured policy
//	POST /echo      the decoded request body
//
// /whoami is only registered when a token verifier is configured.
package routes
