// Package auth implements the server's credential primitives: HS256 access
// token issue/verify and argon2id password hashing.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access token claim set: the registered claims plus the
// account identity. Email is the login handle; UserID is the account's opaque
// identifier and is omitted when not asserted.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	UserID string `json:"userId,omitempty"`
}

// Principal is the identity extracted from a verified access token. UserID
// may be empty when the token does not assert one.
type Principal struct {
	Email  string
	UserID string
}

// GenerateToken signs an HS256 access token asserting email, the optional
// userID and the issue time. Tokens deliberately carry no expiry claim; a
// signed token stays valid until the secret rotates. An empty secretKey
// yields common.ErrorMissingSecret rather than an unsigned token.
func GenerateToken(email string, userID string, secretKey []byte) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrorMissingSecret
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Email:  email,
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString against secretKey and returns the asserted
// principal. Malformed structure, an unexpected signing method and a
// signature mismatch all map to common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Principal, error) {
	if len(secretKey) == 0 {
		return nil, common.ErrorMissingSecret
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	// A token without an identity is useless downstream.
	if claims.Email == "" {
		return nil, common.ErrInvalidToken
	}

	return &Principal{Email: claims.Email, UserID: claims.UserID}, nil
}
