package helpers

import (
	"testing"
	"time"

	"vibesync_server/global"

	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_Roundtrip(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	token, err := GenerateJWT("user-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, err := ParseJWT(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
	require.Equal(t, "alice", username)
}

func TestParseJWT_Expired(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	prev := global.TokenDuration
	global.TokenDuration = -time.Hour
	token, err := GenerateJWT("user-1", "alice")
	global.TokenDuration = prev
	require.NoError(t, err)

	_, _, err = ParseJWT(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	token, err := GenerateJWT("user-1", "alice")
	require.NoError(t, err)

	global.JwtSecret = []byte("other-secret")
	_, _, err = ParseJWT(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_Malformed(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, _, err := ParseJWT(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestBearerToken(t *testing.T) {
	require.Equal(t, "abc", BearerToken("Bearer abc"))
	require.Equal(t, "", BearerToken("abc"))
	require.Equal(t, "", BearerToken(""))
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@x.com", NormalizeEmail("Alice@X.COM"))
	require.Equal(t, "alice@x.com", NormalizeEmail("  alice@x.com "))
}
