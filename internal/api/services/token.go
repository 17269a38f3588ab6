package services

import (
	"fmt"
	"time"

	"github.com/flashnote-app/flashnote/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity assertions carried in a session token.
type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens. Expiry is
// the only invalidation mechanism; there is no revocation list.
type TokenService interface {
	Issue(userID uint, email string) (string, error)
	Verify(token string) (*Claims, error)
}

type tokenService struct {
	secret string
	expiry time.Duration
}

// NewTokenService creates a TokenService signing with secret. Tokens
// expire after expiry.
func NewTokenService(secret string, expiry time.Duration) TokenService {
	return &tokenService{secret: secret, expiry: expiry}
}

func (s *tokenService) Issue(userID uint, email string) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not set: %w", models.ErrMissingConfig)
	}
	if s.expiry <= 0 {
		return "", fmt.Errorf("token expiry is not set: %w", models.ErrMissingConfig)
	}

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *tokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}
