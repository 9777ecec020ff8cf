// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package request

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/ToddHoff/lambda-api/models"
)

// HeaderAuthorization is the request header parsed into [models.Auth].
const HeaderAuthorization = "Authorization"

var builtinSchemes = []models.AuthType{
	models.AuthBasic,
	models.AuthBearer,
	models.AuthDigest,
	models.AuthOAuth,
}

// AuthParser turns raw Authorization header values into [models.Auth].
//
// Only recognized schemes produce a result; anything else degrades to
// [models.AuthNone]. An AuthParser is immutable once built and may be shared
// between concurrent invocations.
type AuthParser struct {
	schemes map[string]models.AuthType // lower-cased scheme -> canonical type
}

var defaultAuthParser = mustAuthParser()

func mustAuthParser() *AuthParser {
	p, err := NewAuthParser()
	if err != nil {
		panic(err)
	}
	return p
}

// NewAuthParser builds a parser recognizing the built-in schemes (Basic,
// Bearer, Digest, OAuth) plus the given custom schemes. Custom schemes are
// reported verbatim as the Auth type and never parsed beyond their token.
func NewAuthParser(custom ...string) (*AuthParser, error) {
	p := &AuthParser{
		schemes: make(map[string]models.AuthType, len(builtinSchemes)+len(custom)),
	}
	for _, s := range builtinSchemes {
		p.schemes[strings.ToLower(string(s))] = s
	}

	for _, s := range custom {
		s = strings.TrimSpace(s)
		if !isToken(s) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidScheme, s)
		}
		key := strings.ToLower(s)
		if _, ok := p.schemes[key]; ok {
			continue
		}
		p.schemes[key] = models.AuthType(s)
	}

	return p, nil
}

// ParseAuthorization parses header with the built-in schemes only.
func ParseAuthorization(header string) models.Auth {
	return defaultAuthParser.Parse(header)
}

// Parse parses a raw Authorization header value. It never fails: absent,
// truncated, malformed or unrecognized values all yield [models.NoAuth].
func (p *AuthParser) Parse(header string) models.Auth {
	header = strings.TrimSpace(header)
	if header == "" {
		return models.NoAuth()
	}

	i := strings.IndexAny(header, " \t")
	if i < 0 {
		return models.NoAuth()
	}
	scheme, rest := header[:i], strings.TrimSpace(header[i+1:])
	if rest == "" || !isToken(scheme) {
		return models.NoAuth()
	}

	authType, ok := p.schemes[strings.ToLower(scheme)]
	if !ok {
		return models.NoAuth()
	}

	switch authType {
	case models.AuthBasic:
		return parseBasic(rest)
	case models.AuthOAuth:
		return parseOAuth(rest)
	default:
		return models.Auth{Type: authType, Value: rest}
	}
}

func parseBasic(token string) models.Auth {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(token)
		if err != nil {
			return models.NoAuth()
		}
	}

	username, password, _ := strings.Cut(string(decoded), ":")
	return models.Auth{
		Type:  models.AuthBasic,
		Value: token,
		Basic: &models.BasicCredentials{
			Username: username,
			Password: password,
		},
	}
}

// parseOAuth extracts key="value" pairs from an OAuth 1.0 parameter list.
// Commas inside quoted values do not split pairs. Values are kept exactly as
// written between the quotes.
func parseOAuth(params string) models.Auth {
	auth := models.Auth{Type: models.AuthOAuth, Value: params}

	for _, part := range splitQuoted(params, ',') {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = unquote(strings.TrimSpace(value))

		if idx := paramIndex(auth.OAuth, key); idx >= 0 {
			auth.OAuth[idx].Value = value
			continue
		}
		auth.OAuth = append(auth.OAuth, models.OAuthParam{Key: key, Value: value})
	}

	return auth
}

func paramIndex(params []models.OAuthParam, key string) int {
	for i, p := range params {
		if p.Key == key {
			return i
		}
	}
	return -1
}

func splitQuoted(s string, sep byte) []string {
	var parts []string
	inQuotes := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case sep:
			if !inQuotes {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return strings.Trim(s, `"`)
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	return true
}
