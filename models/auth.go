// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// AuthType names the scheme of a parsed Authorization header.
type AuthType string

// Built-in authorization schemes. Custom schemes registered through
// configuration use their canonical spelling as the AuthType.
const (
	AuthNone   AuthType = "none"
	AuthBasic  AuthType = "Basic"
	AuthBearer AuthType = "Bearer"
	AuthDigest AuthType = "Digest"
	AuthOAuth  AuthType = "OAuth"
)

// Auth is the parsed form of the request's Authorization header.
//
// It is a tagged variant keyed by Type:
//   - AuthNone: no usable header; Value is empty and renders as JSON null.
//   - AuthBasic: Value is the raw base64 token and Basic holds the decoded
//     credentials.
//   - AuthOAuth: Value is the raw parameter string and OAuth holds the
//     key/value pairs in the order they appeared.
//   - any other type: Value is the raw token, nothing else is parsed.
type Auth struct {
	Type  AuthType
	Value string

	// Basic is non-nil only when Type is AuthBasic.
	Basic *BasicCredentials

	// OAuth is non-empty only when Type is AuthOAuth.
	OAuth []OAuthParam
}

// BasicCredentials holds the username and password decoded from a Basic
// authorization token.
type BasicCredentials struct {
	Username string
	Password string
}

// OAuthParam is a single key="value" pair of an OAuth 1.0 header.
type OAuthParam struct {
	Key   string
	Value string
}

// NoAuth returns the result used for absent or unusable Authorization headers.
func NoAuth() Auth {
	return Auth{Type: AuthNone}
}

// IsNone reports whether no usable authorization was supplied.
func (a Auth) IsNone() bool {
	return a.Type == AuthNone || a.Type == ""
}

// Param returns the value of the OAuth parameter named key.
func (a Auth) Param(key string) (string, bool) {
	for _, p := range a.OAuth {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// MarshalJSON renders the variant with its scheme fields flattened next to
// "type" and "value", e.g. {"type":"Basic","value":"...","username":"u","password":"p"}.
// OAuth parameters named "type" or "value" are omitted from the flattened
// form so the object keeps unique keys.
func (a Auth) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	authType := a.Type
	if authType == "" {
		authType = AuthNone
	}
	if err := writeField(&buf, "type", string(authType), true); err != nil {
		return nil, err
	}

	buf.WriteString(`,"value":`)
	if a.IsNone() {
		buf.WriteString("null")
	} else if err := writeString(&buf, a.Value); err != nil {
		return nil, err
	}

	switch {
	case a.Type == AuthBasic && a.Basic != nil:
		if err := writeField(&buf, "username", a.Basic.Username, false); err != nil {
			return nil, err
		}
		if err := writeField(&buf, "password", a.Basic.Password, false); err != nil {
			return nil, err
		}
	case a.Type == AuthOAuth:
		for _, p := range a.OAuth {
			if p.Key == "type" || p.Key == "value" {
				continue
			}
			if err := writeField(&buf, p.Key, p.Value, false); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key, value string, first bool) error {
	if !first {
		buf.WriteByte(',')
	}
	if err := writeString(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return writeString(buf, value)
}

func writeString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
