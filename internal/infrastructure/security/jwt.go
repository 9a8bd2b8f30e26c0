// Package security provides JWT token utilities
package security

import (
	"errors"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/user"
	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/golang-jwt/jwt/v4"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GetProfileFromClaims extracts a user profile from JWT claims
func GetProfileFromClaims(claims jwt.MapClaims) *user.Profile {
	if profileData, ok := claims["profile"].(map[string]any); ok {
		id, _ := claims["sub"].(string)
		email, _ := profileData["email"].(string)
		username, _ := profileData["username"].(string)
		if id == "" {
			return nil
		}
		return &user.Profile{
			ID:       id,
			Email:    email,
			Username: username,
		}
	}
	return nil
}

// GenerateUserToken creates a signed JWT for a user profile
func GenerateUserToken(profile *user.Profile, jwtSecret string) (string, error) {
	claims := jwt.MapClaims{
		"sub": profile.ID,
		"profile": map[string]any{
			"email":    profile.Email,
			"username": profile.Username,
		},
		"iat": time.Now().UTC().Unix(),
		"exp": time.Now().UTC().Add(config.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	result, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", err
	}

	return result, nil
}
