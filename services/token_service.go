package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService issues the short-lived access tokens used by the web client.
// There is no refresh or revocation; a token simply expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, ttl: time.Hour}
}

// Sign produces an HS256 token carrying the supplied claims verbatim plus
// an expiry one hour out. No claim schema is enforced.
func (s *TokenService) Sign(userClaims map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range userClaims {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
