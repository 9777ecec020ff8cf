// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/bytedance/sonic"

// JSON is the codec used for every request and response body.
//
// Map keys are sorted and output is compact, like encoding/json, but HTML
// characters are not escaped so bodies match what browser-side JSON.stringify
// would produce.
var JSON = sonic.Config{
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
}.Froze()
