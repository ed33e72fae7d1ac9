package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is who a WebSocket connection claims to be.
type Identity struct {
	Email string
	Role  string
}

// Verifier checks HS256 tokens carrying "email" and "role" claims.
type Verifier struct {
	secret []byte
}

// NewVerifier returns nil for an empty secret; callers treat a nil
// verifier as "identity comes from the user_connected frame".
func NewVerifier(secret string) *Verifier {
	if strings.TrimSpace(secret) == "" {
		return nil
	}
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenStr string) (Identity, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return Identity{}, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if email == "" || role == "" {
		return Identity{}, fmt.Errorf("%w: email and role claims are required", ErrInvalidToken)
	}
	return Identity{Email: email, Role: role}, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
