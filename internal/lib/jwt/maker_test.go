package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 7 * 24 * time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name    string
		userUID string
	}{
		{
			name:    "uuid identifier",
			userUID: "550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:    "random uuid identifier",
			userUID: uuid.New().String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userUID)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userUID, claims.UserUID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 7 * 24 * time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL)

	validToken, err := maker.GenerateToken("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "пустой токен",
			token: "",
		},
		{
			name:  "некорректный формат токена",
			token: "invalid.token.here",
		},
		{
			name:  "просроченный токен с верной подписью",
			token: createExpiredToken(t, secretKey),
		},
		{
			name:  "токен с чужим секретом",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "испорченная подпись",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func createExpiredToken(t *testing.T, secretKey string) string {
	t.Helper()
	claims := CustomClaims{
		UserUID: "550e8400-e29b-41d4-a716-446655440000",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	require.NoError(t, err)
	return signed
}

func createTokenWithWrongSecret(t *testing.T) string {
	t.Helper()
	maker := NewJWTMaker("another_secret_key", time.Hour)
	token, err := maker.GenerateToken("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	return token
}
