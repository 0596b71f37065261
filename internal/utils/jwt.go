package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenType is the token_type returned to clients alongside an access token.
const TokenType = "bearer"

// Claims carries the user identity of an access token.
type Claims struct {
	UserUUID string `json:"user_uuid"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an HS256 token for the given user.
func GenerateAccessToken(userUUID, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserUUID: userUUID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUUID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken parses and validates an access token
func ParseAccessToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	if claims.UserUUID == "" {
		return nil, errors.New("token has no user_uuid claim")
	}

	return claims, nil
}

// ExtractToken accepts "Bearer <token>" as well as a bare token.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], TokenType) {
		return strings.TrimSpace(parts[1])
	}
	return header
}
