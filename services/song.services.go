package services

import (
	"time"

	"vibesync_server/errors"
	"vibesync_server/global"
	"vibesync_server/schemas"

	"github.com/gocql/gocql"
	"github.com/gofiber/fiber/v2"
)

// UploadSong streams the uploaded audio file to the media sink and records it
func UploadSong(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	fileHeader, err := c.FormFile("song")
	if err != nil {
		return errors.HandleBadRequestError(c, "Song", "missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.HandleBadRequestError(c, "Song", "invalid")
	}
	defer file.Close()

	title := c.FormValue("title")
	if title == "" {
		title = fileHeader.Filename
	}
	artist := c.FormValue("artist")

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	songID := gocql.TimeUUID()

	songURL, publicID, err := global.MediaSink.Put(global.Context, songID.String(), file, fileHeader.Size, contentType)
	if err != nil {
		return errors.HandleInternalError(c, "media_put", err.Error())
	}

	created := time.Now().UTC()

	err = global.Session.Query(`
		INSERT INTO songs (user_id,created,song_id,title,artist,song_url,public_id)
		VALUES(?,?,?,?,?,?,?);`,
		userID,
		created,
		songID,
		title,
		artist,
		songURL,
		publicID,
	).WithContext(global.Context).Exec()

	if err != nil {
		return errors.HandleInternalError(c, "songs", "ScyllaDB: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.SongResponseSchema{
		Song: schemas.SongSchema{
			SongID:     songID.String(),
			Title:      title,
			Artist:     artist,
			SongURL:    songURL,
			PublicID:   publicID,
			UploadedBy: userID,
			Created:    created.UnixMilli(),
		},
	})
}

// MySongs returns the caller's songs, newest first
func MySongs(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	iter := global.Session.Query(`
		SELECT song_id, created, title, artist, song_url, public_id FROM songs WHERE user_id = ?;`,
		userID,
	).WithContext(global.Context).Iter()

	songs := []schemas.SongSchema{}
	var (
		songID   gocql.UUID
		created  time.Time
		title    string
		artist   string
		songURL  string
		publicID string
	)
	for iter.Scan(&songID, &created, &title, &artist, &songURL, &publicID) {
		songs = append(songs, schemas.SongSchema{
			SongID:     songID.String(),
			Title:      title,
			Artist:     artist,
			SongURL:    songURL,
			PublicID:   publicID,
			UploadedBy: userID,
			Created:    created.UnixMilli(),
		})
	}

	if err := iter.Close(); err != nil {
		return errors.HandleInternalError(c, "songs", "ScyllaDB: "+err.Error())
	}

	return c.JSON(schemas.SongsResponseSchema{Songs: songs})
}
