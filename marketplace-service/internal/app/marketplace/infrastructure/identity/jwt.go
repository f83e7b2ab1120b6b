package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"

	"github.com/golang-jwt/jwt/v5"
)

var ErrExpiredToken = errors.New("token has expired")

// Claims - полезная нагрузка HS256 токена, совместимая с Firebase claims (sub, email)
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier проверяет токены, подписанные общим секретом.
// Используется в локальной разработке и тестах вместо Firebase
type JWTVerifier struct {
	secretKey string
}

func NewJWTVerifier(secretKey string) *JWTVerifier {
	return &JWTVerifier{secretKey: secretKey}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*infrastructure.Identity, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(v.secretKey), nil
		},
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", infrastructure.ErrInvalidToken, ErrExpiredToken)
		}
		return nil, infrastructure.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, infrastructure.ErrInvalidToken
	}

	return &infrastructure.Identity{
		UID:   claims.Subject,
		Email: claims.Email,
	}, nil
}

// Sign выпускает токен для uid/email. Нужен для локальной разработки и тестов
func (v *JWTVerifier) Sign(uid, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(v.secretKey))
}
