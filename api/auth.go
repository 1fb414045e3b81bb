package api

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/techsync/techsync-backend/errs"
)

// parseUserToken verifies an HS256 access token and returns the user ID in
// its subject claim
func parseUserToken(tokenString string, secret []byte) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return uuid.Nil, errs.NewExpiredTokenError()
	}
	if err != nil {
		return uuid.Nil, errs.NewInvalidTokenError(err)
	}
	if !token.Valid {
		return uuid.Nil, errs.NewInvalidTokenError(nil)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.NewInvalidTokenError(err)
	}
	return userID, nil
}
