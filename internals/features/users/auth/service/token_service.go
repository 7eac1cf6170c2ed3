package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"tunedu_backend/internals/configs"
)

const accessTTL = 7 * 24 * time.Hour

// GenerateToken issues an HS256 access token carrying the user id.
func GenerateToken(userID uint) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
