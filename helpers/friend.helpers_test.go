package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFriend_UnparseableID(t *testing.T) {
	// never reaches the store, so no session is needed
	for _, friendID := range []string{"", "not-a-uuid", "12345"} {
		isFriend, err := IsFriend("3e4666bf-d5e5-4aa7-b8ce-cefe41c7568a", friendID)
		require.NoError(t, err)
		require.False(t, isFriend)
	}
}
