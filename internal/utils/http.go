// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/ToddHoff/lambda-api/models"
)

// WriteEnvelope writes a proxy envelope to an HTTP response: headers first,
// then the status code, then the body (base64-decoded when the envelope is
// flagged with isBase64Encoded).
//
// If the body cannot be decoded it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Returns the number of bytes written to the response body.
func WriteEnvelope(w http.ResponseWriter, env models.Envelope) (int, error) {
	body := []byte(env.Body)
	if env.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(env.Body)
		if err != nil {
			http.Error(w, "error decoding envelope body", http.StatusInternalServerError)
			return 0, fmt.Errorf("error decoding envelope body: %w", err)
		}
		body = decoded
	}

	for name, value := range env.Headers {
		w.Header().Set(name, value)
	}

	status := env.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	return w.Write(body)
}
