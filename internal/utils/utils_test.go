package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "S3cret"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	employeeID := uint(7)
	raw, err := GenerateAccessToken(3, "employee", &employeeID, "secret", 5)
	require.NoError(t, err)

	claims, err := ParseAccessToken(raw, "secret")
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(3), userID)
	assert.Equal(t, "employee", claims.UserType)
	require.NotNil(t, claims.EmployeeID)
	assert.Equal(t, uint(7), *claims.EmployeeID)
}

func TestParseAccessTokenRejects(t *testing.T) {
	raw, err := GenerateAccessToken(3, "admin", nil, "secret", 5)
	require.NoError(t, err)

	_, err = ParseAccessToken(raw, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateAccessToken(3, "admin", nil, "secret", -1)
	require.NoError(t, err)
	_, err = ParseAccessToken(expired, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken("garbage", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
