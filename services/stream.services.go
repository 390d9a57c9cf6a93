package services

import (
	"vibesync_server/errors"
	"vibesync_server/global"
	"vibesync_server/helpers"
	"vibesync_server/schemas"
	"vibesync_server/socket"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
)

// Lobby serves the global broadcast channel. Any connected client's message
// is fanned out to every other connected client; no friendship or auth
// filtering. A token query param is optional and only feeds presence.
func Lobby(ws *websocket.Conn) {

	userID, _, err := helpers.ParseJWT(ws.Query("token"))
	if err == nil && userID != "" {
		errors.HandleBasicError(global.RedisClient.SAdd(global.Context, global.OnlineUsersKey, userID).Err())
		defer func() {
			errors.HandleBasicError(global.RedisClient.SRem(global.Context, global.OnlineUsersKey, userID).Err())
		}()
	}

	stream(ws, socket.LobbyRoom)
}

// DirectChat serves the friend-gated channel for one user pair. The gate
// middleware has already admitted the caller before the upgrade.
func DirectChat(ws *websocket.Conn) {

	userID := ws.Locals("userid").(string)
	friendID := ws.Params("friendId")

	stream(ws, socket.RoomKey(userID, friendID))
}

func stream(ws *websocket.Conn, room string) {

	defer ws.Close()

	client, err := socket.Clients.Register(room)
	if err != nil {
		errors.HandleBasicError(err)
		return
	}
	defer socket.Clients.Deregister(client.ID)

	go func() {
		for b := range client.Recv() {
			if ws.WriteMessage(websocket.TextMessage, b) != nil {
				ws.Close()
				return
			}
		}
	}()

	for {
		mt, b, err := ws.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		msg := jsoniter.Get(b, "message").ToString()
		if msg == "" {
			continue
		}

		out, err := jsoniter.Marshal(schemas.ChatMessageSchema{Message: msg})
		if err != nil {
			errors.HandleBasicError(err)
			continue
		}

		socket.Clients.Broadcast(client.ID, room, out)
	}
}
