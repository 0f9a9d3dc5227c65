package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", "owner", "OWNER", 15)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), tok.Exp, 5*time.Second)

	claims, err := ParseAccessToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, Claims{Subject: "owner", Role: "OWNER"}, claims)
}

func TestParseAccessTokenRejects(t *testing.T) {
	t.Parallel()

	good, err := NewAccessToken("secret", "owner", "OWNER", 15)
	require.NoError(t, err)
	expired, err := NewAccessToken("secret", "owner", "OWNER", -5)
	require.NoError(t, err)
	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "x",
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"wrong secret": good.Token,
		"expired":      expired.Token,
		"missing role": noRole,
		"garbage":      "not.a.token",
	} {
		secret := "secret"
		if name == "wrong secret" {
			secret = "other"
		}
		_, err := ParseAccessToken(secret, raw)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("box-office", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "box-office"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "box-office"))
}

func TestOwnerPasswordHash(t *testing.T) {
	t.Parallel()

	fromPlain, err := OwnerPasswordHash("", "box-office", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(fromPlain, "box-office"))

	kept, err := OwnerPasswordHash(fromPlain, "ignored", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, fromPlain, kept)

	_, err = OwnerPasswordHash("not-bcrypt", "", bcrypt.MinCost)
	assert.Error(t, err)
	_, err = OwnerPasswordHash("", "", bcrypt.MinCost)
	assert.Error(t, err)
}
