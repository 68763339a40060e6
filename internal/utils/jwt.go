// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeSeedBackup is the token scope required to write seed backups.
const ScopeSeedBackup = "seed:backup"

// SessionClaims are the claims carried by a remote store session token.
// Scope is a space-separated list, as in OAuth2.
type SessionClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
}

// HasScope reports whether scope is listed in the token's scope claim.
func (c *SessionClaims) HasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope)
}

// Expired reports whether the token has an expiry before now.
// Tokens without exp never expire.
func (c *SessionClaims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time)
}

// GenerateSessionToken creates an HMAC-SHA256 signed session token. The
// remote store issues these; the client only needs it for tooling and tests.
func GenerateSessionToken(subject, scope string, tokenDuration time.Duration, signKey string) (string, error) {
	if subject == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Scope: scope,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken decodes the claims of a session token without verifying
// its signature. The client does not hold the remote store's signing key;
// the server verifies every request.
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(tokenString), claims); err != nil {
		return nil, fmt.Errorf("error parsing session token: %w", err)
	}
	return claims, nil
}
