package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fruit-order-service/config"
)

var ErrInvalidToken = errors.New("invalid token")

func GenerateToken(userID string) (string, error) {
	cfg := config.LoadConfig()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(cfg.JWTSecret))
}

func ParseToken(tokenString string) (string, error) {
	cfg := config.LoadConfig()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if userID, ok := claims["user_id"].(string); ok {
			return userID, nil
		}
	}

	return "", ErrInvalidToken
}
