package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, err := GenerateToken(secret, userID, "editor@example.com", "editor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "editor@example.com", claims.Email)
	assert.Equal(t, "editor", claims.Role)
	assert.Equal(t, "gita-content-api", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), uuid.New(), "a@example.com", "viewer")
	require.NoError(t, err)

	_, err = ValidateToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken([]byte("secret"), "not.a.token")
	assert.Error(t, err)
}
