package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session_token"

// SessionTTL bounds how long a login stays valid.
const SessionTTL = 24 * time.Hour

type sessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// IssueSession signs a session token for the given user. The server keeps no
// session table; the token itself is the whole session state.
func IssueSession(secret []byte, userID uint) (string, error) {
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSession validates a session token and returns the user id it was
// issued for.
func ParseSession(secret []byte, tokenString string) (uint, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
