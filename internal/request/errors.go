// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package request

import "errors"

// ErrInvalidScheme is returned by [NewAuthParser] when a custom scheme name is
// not a valid HTTP token.
var ErrInvalidScheme = errors.New("invalid authorization scheme")
