package helpers

import (
	"errors"
	"testing"
	"time"

	"vibesync_server/global"

	"github.com/stretchr/testify/require"
)

func alwaysFriends(string, string) (bool, error) { return true, nil }
func neverFriends(string, string) (bool, error)  { return false, nil }
func faultyFriends(string, string) (bool, error) { return false, errors.New("storage down") }
func grantedButErr(string, string) (bool, error) { return true, errors.New("storage down") }

func TestResolveChatAccess_Granted(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	token, err := GenerateJWT("user-1", "alice")
	require.NoError(t, err)

	decision, callerID := ResolveChatAccess(token, "user-2", alwaysFriends)
	require.Equal(t, GateGranted, decision)
	require.Equal(t, "user-1", callerID)
}

func TestResolveChatAccess_DeniedWhenNotFriends(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	token, err := GenerateJWT("user-1", "alice")
	require.NoError(t, err)

	decision, _ := ResolveChatAccess(token, "user-2", neverFriends)
	require.Equal(t, GateDenied, decision)
}

func TestResolveChatAccess_DeniedWithoutToken(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	// absent token denies regardless of friendship
	decision, callerID := ResolveChatAccess("", "user-2", alwaysFriends)
	require.Equal(t, GateDenied, decision)
	require.Equal(t, "", callerID)
}

func TestResolveChatAccess_DeniedWithExpiredToken(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	prev := global.TokenDuration
	global.TokenDuration = -time.Hour
	token, err := GenerateJWT("user-1", "alice")
	global.TokenDuration = prev
	require.NoError(t, err)

	decision, _ := ResolveChatAccess(token, "user-2", alwaysFriends)
	require.Equal(t, GateDenied, decision)
}

func TestResolveChatAccessFor_ResolvedCaller(t *testing.T) {
	require.Equal(t, GateGranted, ResolveChatAccessFor("user-1", "user-2", alwaysFriends))
	require.Equal(t, GateDenied, ResolveChatAccessFor("user-1", "user-2", neverFriends))
	require.Equal(t, GateDenied, ResolveChatAccessFor("user-1", "user-2", faultyFriends))
}

func TestResolveChatAccess_FailClosedOnLookupFault(t *testing.T) {
	global.JwtSecret = []byte("test-secret")

	token, err := GenerateJWT("user-1", "alice")
	require.NoError(t, err)

	decision, _ := ResolveChatAccess(token, "user-2", faultyFriends)
	require.Equal(t, GateDenied, decision)

	decision, _ = ResolveChatAccess(token, "user-2", grantedButErr)
	require.Equal(t, GateDenied, decision)
}
