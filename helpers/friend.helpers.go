package helpers

import (
	"time"

	"vibesync_server/global"

	"github.com/gocql/gocql"
)

// InsertFriend inserts friendID into userID's friend set if absent.
// The row upsert is a single conditional write, so repeat and concurrent
// calls for the same pair land on the same final state.
func InsertFriend(userID string, friendID string, friendUsername string) error {
	return global.Session.Query(`
		INSERT INTO user_friends (user_id,friend_id,friend_username,created)
		VALUES(?,?,?,?)
		IF NOT EXISTS;`,
		userID,
		friendID,
		friendUsername,
		time.Now().UTC(),
	).WithContext(global.Context).Exec()
}

// GetFriendIDs returns all friend ids in userID's friend set
func GetFriendIDs(userID string) ([]string, error) {

	iter := global.Session.Query(`
		SELECT friend_id FROM user_friends WHERE user_id = ?;`,
		userID,
	).WithContext(global.Context).Iter()

	friends := []string{}
	var friendID string
	for iter.Scan(&friendID) {
		friends = append(friends, friendID)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	return friends, nil
}

// IsFriend reports whether friendID appears in userID's friend set.
// An id that cannot be a user id cannot be in any friend set.
func IsFriend(userID string, friendID string) (bool, error) {

	if _, err := gocql.ParseUUID(friendID); err != nil {
		return false, nil
	}

	var existCount int

	err := global.Session.Query(`
		SELECT count(*) FROM user_friends WHERE user_id = ? AND friend_id = ? LIMIT 1;`,
		userID,
		friendID,
	).WithContext(global.Context).Scan(&existCount)

	if err != nil {
		return false, err
	}

	return existCount != 0, nil
}
