package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"vibesync_server/config"
	"vibesync_server/errors"
	"vibesync_server/global"
	"vibesync_server/media"
	"vibesync_server/routes"
	"vibesync_server/textgen"

	redis "github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	fiber "github.com/gofiber/fiber/v2"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func init() {

	internalErrorsFile, err := os.OpenFile("internal_errors.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	monitorLogsFile, err := os.OpenFile("monitor_logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	global.InternalLogger = log.New(internalErrorsFile, "", log.LstdFlags)
	global.MonitorLogger = log.New(monitorLogsFile, "", log.LstdFlags)

	data, err := ioutil.ReadFile("./config.json")
	errors.HandleFatalError(err)

	err = json.Unmarshal(data, &config.Config)
	errors.HandleFatalError(err)

	if config.Config.JwtSecret == "" {
		log.Fatalln("jwtSecret is not set in config.json")
	}
	global.JwtSecret = []byte(config.Config.JwtSecret)

	global.MinIOClient, err = minio.New(config.Config.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Config.MinIO.User, config.Config.MinIO.Password, ""),
		Secure: false,
	})
	errors.HandleFatalError(err)

	songSink := media.NewMinIOSink(global.MinIOClient, "songs", config.Config.MinIO.BaseURL)
	errors.HandleFatalError(songSink.EnsureBucket(global.Context))
	global.MediaSink = songSink

	global.TextGen = textgen.NewHTTPGenerator(config.Config.TextGen.Endpoint, config.Config.TextGen.APIKey)

	global.RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.Config.Redis.Addr,
		Password: config.Config.Redis.Password,
		DB:       config.Config.Redis.DB,
	})

	cluster := gocql.NewCluster(config.Config.Scylla.Host)
	cluster.Keyspace = config.Config.Scylla.Keyspace
	global.Session, err = cluster.CreateSession()
	errors.HandleFatalError(err)
	fmt.Println("ScyllaDB initialized")
	fmt.Printf("Keyspace: %s\n\n", cluster.Keyspace)

	err = global.Session.Query(`
		CREATE TABLE IF NOT EXISTS users (
			email text,
			user_id uuid,
			username text,
			password_hash text,
			profile_picture text,
			created timestamp,
			PRIMARY KEY (email))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };
	`).Exec()

	errors.HandleFatalError(err)

	err = global.Session.Query(`
		CREATE TABLE IF NOT EXISTS users_public (
			username text,
			user_id uuid,
			profile_picture text,
			PRIMARY KEY (username))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };
	`).Exec()

	errors.HandleFatalError(err)

	err = global.Session.Query(`
		CREATE TABLE IF NOT EXISTS users_private (
			user_id uuid,
			username text,
			email text,
			profile_picture text,
			PRIMARY KEY (user_id))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };
	`).Exec()

	errors.HandleFatalError(err)

	err = global.Session.Query(`
		CREATE TABLE IF NOT EXISTS user_friends (
			user_id uuid,
			friend_id uuid,
			friend_username text,
			created timestamp,
			PRIMARY KEY (user_id, friend_id))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };
	`).Exec()

	errors.HandleFatalError(err)

	err = global.Session.Query(`
		CREATE TABLE IF NOT EXISTS songs (
			user_id uuid,
			created timestamp,
			song_id timeuuid,
			title text,
			artist text,
			song_url text,
			public_id text,
			PRIMARY KEY (user_id, created))
		WITH
		CLUSTERING ORDER BY (created DESC) AND
		compaction = { 'class' :  'SizeTieredCompactionStrategy'  };
	`).Exec()

	errors.HandleFatalError(err)

}

func main() {

	defer global.Session.Close()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "seed":
			RunSeeder()
		case "destroy":
			DestroySeedData()
		default:
			fmt.Println("Usage: vibesync_server [seed|destroy]")
		}
		return
	}

	app := fiber.New()
	defer app.Shutdown()

	routes.SetRoutes(app)

	fmt.Println("Starting server on port: " + config.Config.Port)
	log.Fatal(app.Listen(config.Config.Port))

}
