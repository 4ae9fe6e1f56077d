package helpers

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	Email string
	Uid   string
	Role  string
	jwt.StandardClaims
}

// TokenHelper signs and validates access tokens. The secret comes from the
// configuration struct, not the process environment.
type TokenHelper struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenHelper(secretKey string) *TokenHelper {
	return &TokenHelper{secretKey: []byte(secretKey), ttl: 24 * time.Hour}
}

func (t *TokenHelper) GenerateToken(email, uid, role string) (string, error) {
	claims := SignedDetails{
		Email: email,
		Uid:   uid,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(t.ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secretKey)
}

func (t *TokenHelper) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return t.secretKey, nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("the token is invalid")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, fmt.Errorf("token is expired")
	}
	return claims, nil
}
