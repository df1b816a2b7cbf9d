package api

import (
	"errors"
	"net/http"
	"strings"
)

// ErrInvalidToken is returned when a request carries no usable credential.
var ErrInvalidToken = errors.New("invalid or missing token")

// Authenticator resolves a bearer token to a user identity.
type Authenticator interface {
	ResolveUser(token string) (string, error)
}

// StaticTokenAuthenticator maps pre-shared tokens to user IDs. Suitable for
// the single-household deployments this server targets.
type StaticTokenAuthenticator map[string]string

func (a StaticTokenAuthenticator) ResolveUser(token string) (string, error) {
	if userID, ok := a[token]; ok && token != "" {
		return userID, nil
	}
	return "", ErrInvalidToken
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimPrefix(h, prefix)
}
