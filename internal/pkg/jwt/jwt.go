package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Employeest/employeest-be/internal/pkg/config"
	"github.com/Employeest/employeest-be/pkg/constants"
	pkgErrors "github.com/Employeest/employeest-be/pkg/responses"
)

// UserClaims carries the authenticated user inside an access token. The JWT ID
// is the key of the backing auth_tokens row, so logout can revoke the token.
type UserClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsStaff  bool   `json:"is_staff"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an access token bound to the given token key.
func GenerateAccessToken(userID int64, username, role string, isStaff bool, tokenKey string) (string, error) {
	cfg := config.GlobalConfig.Auth.JWT

	claims := UserClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		IsStaff:  isStaff,
		Type:     constants.JWTTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenKey,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.AccessTokenExpire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken parses and verifies a token string.
func ParseToken(tokenString string) (*UserClaims, error) {
	cfg := config.GlobalConfig.Auth.JWT

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeUnauthorized, "invalid token", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, pkgErrors.ErrInvalidToken
}

// ValidateToken parses a token and rejects expired ones.
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, pkgErrors.ErrTokenExpired
	}

	return claims, nil
}
