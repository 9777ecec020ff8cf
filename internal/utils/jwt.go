// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ToddHoff/lambda-api/models"
)

//go:generate mockgen -source=jwt.go -destination=../mock/mock_token_verifier.go -package=mock

var (
	// ErrInvalidTokenParams is returned by GenerateJWTToken for empty or zero
	// arguments.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptySubject is returned for tokens without a "sub" claim.
	ErrEmptySubject = errors.New("empty subject error")
)

// TokenVerifier checks a compact JWT and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (models.Token, error)
}

// JWTVerifier verifies HMAC-SHA256 tokens against a fixed key and issuer.
type JWTVerifier struct {
	signKey string
	issuer  string
}

// NewJWTVerifier returns a verifier for tokens signed with signKey and issued
// by issuer.
func NewJWTVerifier(signKey, issuer string) *JWTVerifier {
	return &JWTVerifier{signKey: signKey, issuer: issuer}
}

// Verify implements [TokenVerifier].
func (v *JWTVerifier) Verify(tokenString string) (models.Token, error) {
	return ValidateAndParseJWTToken(tokenString, v.signKey, v.issuer)
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the principal the token is issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns ErrInvalidTokenParams if any of them
// are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", "user-42", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString}, nil
}
