package helpers

import (
	"vibesync_server/global"
)

// GetUsernameByID gets only the username column by id.
// Returns gocql.ErrNotFound when the id does not resolve.
func GetUsernameByID(id string) (string, error) {

	reqUsername := ""

	err := global.Session.Query(`
		SELECT username FROM users_private WHERE user_id = ? LIMIT 1;`,
		id,
	).WithContext(global.Context).Scan(&reqUsername)

	if err != nil {
		return "", err
	}

	return reqUsername, nil
}

// CheckUser checks user by id
func CheckUser(id string) (bool, error) {

	var existCount int

	err := global.Session.Query(`
		SELECT count(*) FROM users_private WHERE user_id = ? LIMIT 1;`,
		id,
	).WithContext(global.Context).Scan(&existCount)

	if existCount == 0 {
		return false, err
	}
	return true, err
}
