// Package auth decides whether the user is signed in. It stores an opaque
// or JWT token handed out by the identity provider and never talks to the
// provider itself.
package auth

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Source tells where a token was found.
type Source string

const (
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
	SourceFile    Source = "file"
)

// EnvToken overrides any stored token.
const EnvToken = "TADA_TOKEN"

type TokenInfo struct {
	Token     string     `json:"token"`
	Source    Source     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"` // from the JWT exp claim, nil for opaque tokens
}

// Expired reports whether the token has an expiry in the past.
func (ti *TokenInfo) Expired(now time.Time) bool {
	return ti.ExpiresAt != nil && !now.Before(*ti.ExpiresAt)
}

// Claims decodes the JWT payload without checking the signature. ok is
// false for opaque tokens.
func Claims(token string) (claims jwt.MapClaims, ok bool) {
	claims = jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// expiry returns the exp claim of a JWT, nil otherwise.
func expiry(token string) *time.Time {
	claims, ok := Claims(token)
	if !ok {
		return nil
	}
	var seconds int64
	switch exp := claims["exp"].(type) {
	case float64:
		seconds = int64(exp)
	case json.Number:
		n, err := exp.Int64()
		if err != nil {
			return nil
		}
		seconds = n
	default:
		return nil
	}
	t := time.Unix(seconds, 0)
	return &t
}

// Subject returns a display name for the token owner: email, then
// preferred_username, then sub. Empty for opaque tokens.
func Subject(token string) string {
	claims, ok := Claims(token)
	if !ok {
		return ""
	}
	for _, key := range []string{"email", "preferred_username", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func stripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
