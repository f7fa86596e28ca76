package service

import (
	"errors"
	"testing"

	"focusflow/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"pgregory.net/rapid"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

// cheapHash 讓 property test 不必每次跑 DefaultCost
func cheapHash(t interface{ Cleanup(func()) }) {
	bcryptGenerateFromPassword = func(pw []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(pw, bcrypt.MinCost)
	}
	t.Cleanup(restoreGlobals)
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)
	require.NoError(t, ComparePassword(hash, "secret"))
	require.Error(t, ComparePassword(hash, "Secret"))

	again, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, hash, again, "salt must differ per call")

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
	_, err = HashPassword("secret")
	require.EqualError(t, err, "gen")
}

func TestAuthenticateUser(t *testing.T) {
	cheapHash(t)
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	u := &model.User{Email: "a@b.com", HashedPassword: hash}
	require.NoError(t, AuthenticateUser(u, "pw"))
	require.ErrorIs(t, AuthenticateUser(u, "bad"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(&model.User{}, ""), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(nil, "pw"), ErrInvalidCredentials)
}

func TestPasswordVerifyProperty(t *testing.T) {
	cheapHash(t)
	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.StringMatching(`[ -~]{1,40}`).Draw(t, "pw")
		other := rapid.StringMatching(`[ -~]{1,40}`).Filter(func(s string) bool { return s != pw }).Draw(t, "other")

		hash, err := HashPassword(pw)
		require.NoError(t, err)
		require.NoError(t, ComparePassword(hash, pw))
		require.Error(t, ComparePassword(hash, other))
	})
}
