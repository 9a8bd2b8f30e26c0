package security

import (
	"testing"

	"github.com/ComboLab/combolab-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword("hunter2hunter2", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestUserTokenRoundTrip(t *testing.T) {
	profile := &user.Profile{ID: "u1", Email: "ryu@example.com", Username: "ryu"}

	token, err := GenerateUserToken(profile, "test-secret")
	require.NoError(t, err)

	claims, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)

	got := GetProfileFromClaims(claims)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "ryu@example.com", got.Email)
	assert.Equal(t, "ryu", got.Username)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	profile := &user.Profile{ID: "u1"}

	token, err := GenerateUserToken(profile, "test-secret")
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateULID(t *testing.T) {
	a := GenerateULID()
	b := GenerateULID()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
