package main

import (
	"fmt"
	"time"

	"vibesync_server/errors"
	"vibesync_server/global"

	"github.com/gocql/gocql"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	username       string
	email          string
	password       string
	profilePicture string
}

func sampleUsers() []seedUser {
	users := make([]seedUser, 10)
	for i := range users {
		n := i + 1
		users[i] = seedUser{
			username:       fmt.Sprintf("user%d", n),
			email:          fmt.Sprintf("user%d@example.com", n),
			password:       fmt.Sprintf("password%d", n),
			profilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=user%d", n),
		}
	}
	return users
}

// RunSeeder inserts the sample users through the same uniqueness-owning
// writes the registration path uses
func RunSeeder() {

	for _, u := range sampleUsers() {

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		errors.HandleFatalError(err)

		userID := gocql.TimeUUID()

		applied, err := global.Session.Query(`
			INSERT INTO users_public (username,user_id,profile_picture)
			VALUES(?,?,?)
			IF NOT EXISTS;`,
			u.username,
			userID,
			u.profilePicture,
		).WithContext(global.Context).MapScanCAS(make(map[string]interface{}))

		errors.HandleFatalError(err)
		if !applied {
			fmt.Println("skipping existing user: " + u.username)
			continue
		}

		applied, err = global.Session.Query(`
			INSERT INTO users (email,user_id,username,password_hash,profile_picture,created)
			VALUES(?,?,?,?,?,?)
			IF NOT EXISTS;`,
			u.email,
			userID,
			u.username,
			string(passwordHash),
			u.profilePicture,
			time.Now().UTC(),
		).WithContext(global.Context).MapScanCAS(make(map[string]interface{}))

		errors.HandleFatalError(err)
		if !applied {
			errors.HandleFatalError(global.Session.Query(`
				DELETE FROM users_public WHERE username = ?;`, u.username,
			).WithContext(global.Context).Exec())
			fmt.Println("skipping existing email: " + u.email)
			continue
		}

		err = global.Session.Query(`
			INSERT INTO users_private (user_id,username,email,profile_picture)
			VALUES(?,?,?,?);`,
			userID,
			u.username,
			u.email,
			u.profilePicture,
		).WithContext(global.Context).Exec()

		errors.HandleFatalError(err)

		fmt.Println("seeded user: " + u.username)
	}

	fmt.Println("User data imported successfully")
}

// DestroySeedData removes the sample users
func DestroySeedData() {

	for _, u := range sampleUsers() {

		var userID gocql.UUID

		err := global.Session.Query(`
			SELECT user_id FROM users_public WHERE username = ? LIMIT 1;`,
			u.username,
		).WithContext(global.Context).Scan(&userID)

		if err == gocql.ErrNotFound {
			continue
		}
		errors.HandleFatalError(err)

		errors.HandleFatalError(global.Session.Query(`
			DELETE FROM users WHERE email = ?;`, u.email,
		).WithContext(global.Context).Exec())

		errors.HandleFatalError(global.Session.Query(`
			DELETE FROM users_public WHERE username = ?;`, u.username,
		).WithContext(global.Context).Exec())

		errors.HandleFatalError(global.Session.Query(`
			DELETE FROM users_private WHERE user_id = ?;`, userID,
		).WithContext(global.Context).Exec())

		errors.HandleFatalError(global.Session.Query(`
			DELETE FROM user_friends WHERE user_id = ?;`, userID,
		).WithContext(global.Context).Exec())

		fmt.Println("destroyed user: " + u.username)
	}

	fmt.Println("All seed data destroyed")
}
