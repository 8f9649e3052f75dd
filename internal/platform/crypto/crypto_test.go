package crypto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("secret", "user-123", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Sub)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "user-123", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", "user-123", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-Passw0rd!", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-Passw0rd!"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}
