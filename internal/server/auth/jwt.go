// Package auth verifies the player identity carried by access tokens.
// Tokens are issued by the platform's account service; GenerateToken exists
// for tooling and tests.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
)

// Claims are the registered claims plus the player the token was issued to.
// Admin tokens may call the privileged writers (move restores, card grants).
type Claims struct {
	jwt.RegisteredClaims
	PlayerID string `json:"player_id"`
	Admin    bool   `json:"admin,omitempty"`
}

func GenerateToken(playerID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	return sign(playerID, false, secretKey, validityDuration)
}

// GenerateAdminToken issues a token carrying the admin claim.
func GenerateAdminToken(playerID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	return sign(playerID, true, secretKey, validityDuration)
}

func sign(playerID string, admin bool, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			Subject:   playerID,
		},
		PlayerID: playerID,
		Admin:    admin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetPlayerIDFromToken validates an HS256 token and returns its player.
func GetPlayerIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims, err := ParseToken(tokenString, secretKey)
	if err != nil {
		return "", err
	}
	return claims.PlayerID, nil
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, err
	}

	if !token.Valid || claims.PlayerID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
