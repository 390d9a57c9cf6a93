package socket

import (
	"sync"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

const CONCURRENCY = 32
const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const SEND_BUFFER = 8

// LobbyRoom is the ungated global broadcast channel
const LobbyRoom = "lobby"

// Client is one registered realtime connection. Messages fanned out to the
// client arrive on its receive channel; the channel is closed on deregister.
type Client struct {
	ID   string
	Room string
	send chan []byte
}

// Recv returns the channel the write pump drains
func (c *Client) Recv() <-chan []byte {
	return c.send
}

type hubShard struct {
	table map[string]*Client
	sync.RWMutex
}

// Hub owns the registry of connected clients. Register, Deregister and
// Broadcast are its only mutators; there is no other way to reach the table.
type Hub struct {
	shards []*hubShard
}

// NewHub returns an empty hub
func NewHub() *Hub {
	shards := make([]*hubShard, CONCURRENCY)
	for i := 0; i < CONCURRENCY; i++ {
		shards[i] = &hubShard{table: make(map[string]*Client)}
	}
	return &Hub{shards: shards}
}

func (h *Hub) shard(id string) *hubShard {
	return h.shards[fnv1a.HashString32(id)%CONCURRENCY]
}

// Register adds a connection to the given room and returns its handle
func (h *Hub) Register(room string) (*Client, error) {

	id, err := nanoid.GenerateString(VALID_NANOID_CHAR, 10)
	if err != nil {
		return nil, err
	}

	client := &Client{
		ID:   id,
		Room: room,
		send: make(chan []byte, SEND_BUFFER),
	}

	shard := h.shard(id)
	shard.Lock()
	for {
		if _, exists := shard.table[client.ID]; !exists {
			break
		}
		shard.Unlock()
		id, err = nanoid.GenerateString(VALID_NANOID_CHAR, 10)
		if err != nil {
			return nil, err
		}
		client.ID = id
		shard = h.shard(id)
		shard.Lock()
	}
	shard.table[client.ID] = client
	shard.Unlock()

	return client, nil
}

// Deregister removes a connection and closes its receive channel
func (h *Hub) Deregister(id string) {

	shard := h.shard(id)

	shard.Lock()
	client := shard.table[id]
	delete(shard.table, id)
	shard.Unlock()

	if client != nil {
		close(client.send)
	}
}

// Broadcast delivers payload to every other client currently registered in
// room. Clients whose buffers are full are dropped from the registry rather
// than block the fan-out.
func (h *Hub) Broadcast(senderID string, room string, payload []byte) {

	var stale []string

	for i := 0; i < CONCURRENCY; i++ {
		shard := h.shards[i]
		shard.RLock()
		for id, client := range shard.table {
			if id == senderID || client.Room != room {
				continue
			}
			select {
			case client.send <- payload:
			default:
				stale = append(stale, id)
			}
		}
		shard.RUnlock()
	}

	for _, id := range stale {
		h.Deregister(id)
	}
}

// Count returns the number of clients registered in room
func (h *Hub) Count(room string) int {

	count := 0

	for i := 0; i < CONCURRENCY; i++ {
		shard := h.shards[i]
		shard.RLock()
		for _, client := range shard.table {
			if client.Room == room {
				count++
			}
		}
		shard.RUnlock()
	}

	return count
}

// RoomKey derives the direct-chat room for an unordered user pair
func RoomKey(userA string, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + ":" + userB
}

// Clients is the hub serving this process's realtime routes
var Clients = NewHub()
