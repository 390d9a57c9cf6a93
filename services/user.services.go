package services

import (
	"sort"

	"vibesync_server/errors"
	"vibesync_server/global"
	"vibesync_server/schemas"

	"github.com/gocql/gocql"
	"github.com/gofiber/fiber/v2"
)

// Users returns every user's non-sensitive projection. Unauthenticated.
func Users(c *fiber.Ctx) error {

	online := make(map[string]bool)

	ids, err := global.RedisClient.SMembers(global.Context, global.OnlineUsersKey).Result()
	if !errors.HandleBasicError(err) {
		for _, id := range ids {
			online[id] = true
		}
	}

	iter := global.Session.Query(`
		SELECT user_id, username, profile_picture FROM users_public;`,
	).WithContext(global.Context).Iter()

	users := []schemas.PublicUserSchema{}
	var (
		userID         gocql.UUID
		username       string
		profilePicture string
	)
	for iter.Scan(&userID, &username, &profilePicture) {
		users = append(users, schemas.PublicUserSchema{
			UserID:         userID.String(),
			Username:       username,
			ProfilePicture: profilePicture,
			Online:         online[userID.String()],
		})
	}

	if err := iter.Close(); err != nil {
		return errors.HandleInternalError(c, "users_public", "ScyllaDB: "+err.Error())
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})

	return c.JSON(schemas.UsersResponseSchema{Users: users})
}
