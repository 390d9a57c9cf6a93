package helpers

import (
	Errors "errors"
	"strings"
	"time"

	"vibesync_server/global"

	"github.com/golang-jwt/jwt"
)

// ErrInvalidToken is returned for any absent, malformed, expired or
// mis-signed session token.
var ErrInvalidToken = Errors.New("invalid token")

// GenerateJWT generates a session token bound to one user identity.
// Pure function of the inputs, signing secret and clock; nothing is persisted.
func GenerateJWT(userID string, username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{}
	claims["id"] = userID
	claims["username"] = username
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(global.TokenDuration).Unix()
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString(global.JwtSecret)
}

// ParseJWT parses a session token to its subject userID and username
func ParseJWT(jwtString string) (string, string, error) {
	if jwtString == "" {
		return "", "", ErrInvalidToken
	}

	token, err := jwt.Parse(jwtString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return global.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", "", ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return userID, username, nil
}

// BearerToken extracts the token from an Authorization: Bearer header value
func BearerToken(authorization string) string {
	chunks := strings.SplitN(authorization, "Bearer ", 2)
	if len(chunks) != 2 {
		return ""
	}
	return chunks[1]
}

// NormalizeEmail lower-cases an email before any store access
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
