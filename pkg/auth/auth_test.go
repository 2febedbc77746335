package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACKey(t *testing.T) {
	s := NewSigner("jwt", "master")

	key := s.GenerateHMACKey("acme")
	userID, err := s.VerifyHMACKey(key)
	require.NoError(t, err)
	assert.Equal(t, "acme", userID)

	_, err = NewSigner("jwt", "other").VerifyHMACKey(key)
	assert.Error(t, err)

	for _, bad := range []string{"", "acme", ".abc", "acme.abc.def", "acme.deadbeef"} {
		_, err := s.VerifyHMACKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestToken(t *testing.T) {
	s := NewSigner("jwt", "master")

	token, err := s.CreateToken("admin")
	require.NoError(t, err)

	claims, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = NewSigner("other", "master").VerifyToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
