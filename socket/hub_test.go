package socket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func recvAll(c *Client) [][]byte {
	var got [][]byte
	for {
		select {
		case b, ok := <-c.Recv():
			if !ok {
				return got
			}
			got = append(got, b)
		default:
			return got
		}
	}
}

func TestHub_BroadcastToAllOthers(t *testing.T) {
	h := NewHub()

	c1, err := h.Register(LobbyRoom)
	require.NoError(t, err)
	c2, err := h.Register(LobbyRoom)
	require.NoError(t, err)
	c3, err := h.Register(LobbyRoom)
	require.NoError(t, err)

	h.Broadcast(c1.ID, LobbyRoom, []byte("hi"))

	require.Len(t, recvAll(c2), 1)
	require.Len(t, recvAll(c3), 1)
	require.Len(t, recvAll(c1), 0)
}

func TestHub_LateJoinerReceivesNothing(t *testing.T) {
	h := NewHub()

	c1, err := h.Register(LobbyRoom)
	require.NoError(t, err)
	c2, err := h.Register(LobbyRoom)
	require.NoError(t, err)

	h.Broadcast(c1.ID, LobbyRoom, []byte("hi"))

	c4, err := h.Register(LobbyRoom)
	require.NoError(t, err)

	require.Len(t, recvAll(c2), 1)
	require.Len(t, recvAll(c4), 0)
}

func TestHub_DeregisterStopsDelivery(t *testing.T) {
	h := NewHub()

	c1, err := h.Register(LobbyRoom)
	require.NoError(t, err)
	c2, err := h.Register(LobbyRoom)
	require.NoError(t, err)

	h.Deregister(c2.ID)

	// receive channel is closed on deregister
	_, ok := <-c2.Recv()
	require.False(t, ok)

	h.Broadcast(c1.ID, LobbyRoom, []byte("hi"))
	require.Equal(t, 1, h.Count(LobbyRoom))
}

func TestHub_RoomsAreIsolated(t *testing.T) {
	h := NewHub()

	lobby, err := h.Register(LobbyRoom)
	require.NoError(t, err)

	pair := RoomKey("user-b", "user-a")
	d1, err := h.Register(pair)
	require.NoError(t, err)
	d2, err := h.Register(pair)
	require.NoError(t, err)

	h.Broadcast(d1.ID, pair, []byte("direct"))

	require.Len(t, recvAll(d2), 1)
	require.Len(t, recvAll(lobby), 0)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	h := NewHub()

	c1, err := h.Register(LobbyRoom)
	require.NoError(t, err)
	c2, err := h.Register(LobbyRoom)
	require.NoError(t, err)

	for i := 0; i < SEND_BUFFER+1; i++ {
		h.Broadcast(c1.ID, LobbyRoom, []byte("spam"))
	}

	require.Equal(t, 1, h.Count(LobbyRoom))
	require.Len(t, recvAll(c2), SEND_BUFFER)
}

func TestRoomKey_Symmetric(t *testing.T) {
	require.Equal(t, RoomKey("a", "b"), RoomKey("b", "a"))
	require.NotEqual(t, RoomKey("a", "b"), RoomKey("a", "c"))
}
