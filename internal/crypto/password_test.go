package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	assert.NoError(t, VerifyPassword("correct horse battery staple", encoded))
	assert.Error(t, VerifyPassword("wrong password", encoded))
}

func TestHashPassword_SaltIsRandom(t *testing.T) {
	a, err := HashPassword("same password")
	require.NoError(t, err)
	b, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_BadInputs(t *testing.T) {
	assert.Error(t, VerifyPassword("", "$argon2id$v=19$m=65536,t=1,p=4$AAAA$AAAA"))
	assert.Error(t, VerifyPassword("pw", "not-a-hash"))
	assert.Error(t, VerifyPassword("pw", "$bcrypt$v=19$m=1,t=1,p=1$AAAA$AAAA"))
}
