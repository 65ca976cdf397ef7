package jwt

import (
	"errors"
	"time"

	"linkhop/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

func GenerateAccessToken(userID string, cfg *config.JWTConfig) (string, *Claims, error) {
	return generate(userID, TypeAccess, cfg.Access, cfg.AccessExp)
}

func GenerateRefreshToken(userID string, cfg *config.JWTConfig) (string, *Claims, error) {
	return generate(userID, TypeRefresh, cfg.Refresh, cfg.RefreshExp)
}

func generate(userID, typ, secret string, ttl time.Duration) (string, *Claims, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, &claims, nil
}

func ParseAccessToken(tokenStr string, secret string) (*Claims, error) {
	return parse(tokenStr, secret, TypeAccess)
}

func ParseRefreshToken(tokenStr string, secret string) (*Claims, error) {
	return parse(tokenStr, secret, TypeRefresh)
}

func parse(tokenStr, secret, typ string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Type != typ {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
