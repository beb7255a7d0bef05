package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestSignRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewTokenService(secret)

	tokenString, err := svc.Sign(map[string]interface{}{
		"email": "student@example.com",
		"role":  "student",
	})
	assert.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "student@example.com", claims["email"])
	assert.Equal(t, "student", claims["role"])

	// Expiry is fixed at one hour out.
	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), exp, 5)
}

func TestSignDoesNotMutateCallerClaims(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))
	claims := map[string]interface{}{"email": "a@x.com"}

	_, err := svc.Sign(claims)

	assert.NoError(t, err)
	assert.NotContains(t, claims, "exp")
}

func TestSignedTokenRejectedByWrongSecret(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))
	tokenString, err := svc.Sign(map[string]interface{}{"email": "a@x.com"})
	assert.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
