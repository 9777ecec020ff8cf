// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package api dispatches proxy-integration events to registered handlers.
//
// Each call to [API.Run] builds a fresh [request.Request] and
// [response.Response], routes the event by method and path, and serializes
// the response into a [models.Envelope]. Handler errors and panics are turned
// into JSON error envelopes; Run itself only fails when its context is done
// before dispatch.
package api
