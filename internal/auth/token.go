package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The client never holds the signing secret, so claims are read without
// signature verification. The server re-verifies every request; the claims
// are only used locally to decide whether a restored credential is worth
// presenting at all.

// Subject extracts the user id claim from a bearer token.
func Subject(tokenStr string) (string, error) {
	claims, err := inspect(tokenStr)
	if err != nil {
		return "", err
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			return sub, nil
		}
		return "", errors.New("invalid claims")
	}
	return id, nil
}

// Expired reports whether the token carries an exp claim in the past. A
// token without an exp claim is treated as unexpired.
func Expired(tokenStr string) bool {
	claims, err := inspect(tokenStr)
	if err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func inspect(tokenStr string) (jwt.MapClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
