package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")

	token, expires, err := GenerateToken("user-1", "admin1", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expires.After(time.Now()))

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin1", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, _, err := GenerateToken("user-1", "admin1", "Admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")

	token, _, err := GenerateTokenWithExpiration("user-1", "u", "Respondent", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateToken("user-1", "u", "Respondent")
	assert.Error(t, err)
}

func TestGetTokenExpiration(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want time.Duration
	}{
		{"default", "", 60 * time.Minute},
		{"explicit", "2h", 2 * time.Hour},
		{"clamped to minimum", "1m", 5 * time.Minute},
		{"clamped to maximum", "2000h", 30 * 24 * time.Hour},
		{"unparseable falls back", "soon", 60 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_EXPIRATION", tt.env)
			assert.Equal(t, tt.want, GetTokenExpiration())
		})
	}
}
