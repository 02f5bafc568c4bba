// Package identity resolves bearer tokens into verified claims. Token
// cryptography lives outside this process: the verifier port is handed
// already-verifiable tokens and answers with the subject's claims.
package identity

import (
	"context"
	"strings"
)

// Claims are the verified facts about a caller. TenantID may be empty when
// the identity provider issued no tenant claim.
type Claims struct {
	UserID   string
	TenantID string
	Email    string
}

// Verifier resolves a bearer token. ok=false means the token is unknown or
// expired; err is reserved for verifier infrastructure failures.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, bool, error)
}

// TokenFromAuthorizationHeader extracts the bearer token from an
// Authorization header value. Empty result means no usable token.
func TokenFromAuthorizationHeader(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
