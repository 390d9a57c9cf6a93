package services

import (
	"vibesync_server/errors"
	"vibesync_server/helpers"
	"vibesync_server/schemas"

	"github.com/gocql/gocql"
	"github.com/gofiber/fiber/v2"
)

// AddFriend idempotently inserts each user into the other's friend set.
// Both directed rows are single set-inserts keyed by id, so repeat and
// concurrent calls converge on the same symmetric state.
func AddFriend(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)
	friendID := c.Params("friendId")

	if userID == friendID {
		return errors.HandleBadRequestError(c, "FriendID", "self")
	}

	username, err := helpers.GetUsernameByID(userID)
	if err != nil {
		if err == gocql.ErrNotFound {
			return errors.HandleNotFoundError(c, "UserID")
		}
		return errors.HandleInternalError(c, "users_private", "ScyllaDB: "+err.Error())
	}

	friendUsername, err := helpers.GetUsernameByID(friendID)
	if err != nil {
		if err == gocql.ErrNotFound {
			return errors.HandleNotFoundError(c, "FriendID")
		}
		return errors.HandleInternalError(c, "users_private", "ScyllaDB: "+err.Error())
	}

	if err = helpers.InsertFriend(userID, friendID, friendUsername); err != nil {
		return errors.HandleInternalError(c, "user_friends", "ScyllaDB: "+err.Error())
	}

	if err = helpers.InsertFriend(friendID, userID, username); err != nil {
		return errors.HandleInternalError(c, "user_friends", "ScyllaDB: "+err.Error())
	}

	userFriends, err := helpers.GetFriendIDs(userID)
	if err != nil {
		return errors.HandleInternalError(c, "user_friends", "ScyllaDB: "+err.Error())
	}

	friendFriends, err := helpers.GetFriendIDs(friendID)
	if err != nil {
		return errors.HandleInternalError(c, "user_friends", "ScyllaDB: "+err.Error())
	}

	return c.JSON(schemas.AddFriendResponseSchema{
		User:   schemas.FriendSetSchema{UserID: userID, Friends: userFriends},
		Friend: schemas.FriendSetSchema{UserID: friendID, Friends: friendFriends},
	})
}

// CheckFriendship reports whether the target appears in the caller's friend set
func CheckFriendship(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)
	friendID := c.Params("friendId")

	exists, err := helpers.CheckUser(userID)
	if err != nil {
		return errors.HandleInternalError(c, "users_private", "ScyllaDB: "+err.Error())
	}
	if !exists {
		return errors.HandleNotFoundError(c, "UserID")
	}

	isFriend, err := helpers.IsFriend(userID, friendID)
	if err != nil {
		return errors.HandleInternalError(c, "user_friends", "ScyllaDB: "+err.Error())
	}

	return c.JSON(schemas.CheckFriendshipSchema{IsFriend: isFriend})
}
