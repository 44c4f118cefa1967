package auth

import (
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// Guard turns a raw credential into a caller identity and checks that the
// caller owns the resource it names.
type Guard struct {
	codec *TokenCodec
}

func NewGuard(codec *TokenCodec) *Guard {
	return &Guard{codec: codec}
}

// Identify parses an Authorization header value of the form "Bearer <token>".
// A missing or malformed header yields common.ErrUnauthenticated; a token the
// codec rejects yields common.ErrInvalidToken.
func (g *Guard) Identify(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", common.ErrUnauthenticated
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", common.ErrUnauthenticated
	}

	claims, err := g.codec.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.UserID(), nil
}

// AssertOwner fails with common.ErrForbidden unless caller and target name
// the same, non-empty user.
func (g *Guard) AssertOwner(caller, target string) error {
	if caller == "" || caller != target {
		return common.ErrForbidden
	}
	return nil
}
