package service

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/webportal/portal-client/internal/core/domain"
)

// TokenMinter derives the outbound authorization credential from an actor.
// Claims carry only the stable identity fields, so the same actor always
// yields the same token.
type TokenMinter struct {
	secret []byte
}

func NewTokenMinter(secret string) *TokenMinter {
	return &TokenMinter{secret: []byte(secret)}
}

// Mint signs an HS256 token for the actor.
func (m *TokenMinter) Mint(actor domain.Actor) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.Itoa(actor.ID),
		"email": actor.Email,
		"role":  string(actor.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}
