package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken covers malformed, badly signed and expired tokens.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrInvalidTokenPayload means the token verified cryptographically but
	// its claims do not carry a usable user id.
	ErrInvalidTokenPayload = errors.New("invalid token payload")
)

const DefaultTokenExpiry = 30 * 24 * time.Hour

type TokenService struct {
	secret []byte
}

func NewTokenService() *TokenService {
	return &TokenService{
		secret: []byte(os.Getenv("JWT_SECRET")),
	}
}

// Sign issues an HS256 token carrying the user id. The expiry defaults to 30
// days and can be overridden per call.
func (s *TokenService) Sign(userID uint, expiry ...time.Duration) (string, error) {
	ttl := DefaultTokenExpiry
	if len(expiry) > 0 {
		ttl = expiry[0]
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(ttl)),
		"jti": uuid.New().String(),
	})

	return token.SignedString(s.secret)
}

// Verify checks the token signature and expiry, then validates that the
// claims contain the user id. The two failure modes are distinct errors.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidTokenPayload
	}

	id, ok := claims["id"].(float64)
	if !ok || id < 1 {
		return 0, ErrInvalidTokenPayload
	}

	return uint(id), nil
}
