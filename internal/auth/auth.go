// Package auth resolves the principal a board operation runs as. Services treat a
// principal in the context as the precondition for every read and mutation.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// ErrUnauthenticated is returned when no valid principal is available
var ErrUnauthenticated = models.ErrUnauthenticated

// Principal is the authenticated user a request acts for
type Principal struct {
	UserID types.UserID
	Name   string
}

type principalKey struct{}

// WithPrincipal returns a context carrying p
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p.UserID > 0
}

// Require returns the principal stored in ctx or ErrUnauthenticated
func Require(ctx context.Context) (Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return Principal{}, ErrUnauthenticated
	}
	return p, nil
}

// Authenticator turns a bearer token into a principal
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// NewToken returns a fresh random API token
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// HashToken returns the stored form of token. Only hashes are persisted.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ParseBearer extracts the token from an Authorization header value
func ParseBearer(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
