package global

import (
	"context"
	"log"
	"time"

	"vibesync_server/media"
	"vibesync_server/textgen"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	minio "github.com/minio/minio-go/v7"
)

// InternalLogger logs internal faults (never echoed to clients)
var InternalLogger *log.Logger

// MonitorLogger logs monitoring events and rejected requests
var MonitorLogger *log.Logger

// Session for global scylla cql session
var Session *gocql.Session

// RedisClient for global redis queries
var RedisClient *redis.Client

// MinIOClient for global min io access
var MinIOClient *minio.Client

// MediaSink is the media-upload collaborator used by the song routes
var MediaSink media.Sink

// TextGen is the text-generation collaborator used by the ai routes
var TextGen textgen.Generator

// JwtSecret signs and verifies session tokens
var JwtSecret []byte

// TokenDuration determines the validity window of a session token (7 days)
var TokenDuration time.Duration = time.Hour * 24 * 7

// Context is the default context
var Context = context.Background()

// Validator validates incoming bodys of data
var Validator = validator.New()

// OnlineUsersKey is the redis set holding currently connected user ids
const OnlineUsersKey = "online_users"
