package services

import (
	"regexp"
	"time"

	"vibesync_server/errors"
	"vibesync_server/global"
	"vibesync_server/helpers"
	"vibesync_server/schemas"

	"github.com/gocql/gocql"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

var validUsername = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Register creates a user record with a hashed password and an empty friend set
func Register(c *fiber.Ctx) error {

	req := new(schemas.RegisterSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if !validUsername.MatchString(req.Username) {
		return errors.HandleBadRequestError(c, "Username", "regex")
	}

	req.Email = helpers.NormalizeEmail(req.Email)

	var existCount int

	err := global.Session.Query(`
		SELECT count(*) FROM users_public WHERE username = ? LIMIT 1;`,
		req.Username,
	).WithContext(global.Context).Scan(&existCount)

	if err != nil {
		return errors.HandleInternalError(c, "users_public", "ScyllaDB: "+err.Error())
	}

	if existCount != 0 {
		return errors.HandleConflictError(c, "Username")
	}

	err = global.Session.Query(`
		SELECT count(*) FROM users WHERE email = ? LIMIT 1;`,
		req.Email,
	).WithContext(global.Context).Scan(&existCount)

	if err != nil {
		return errors.HandleInternalError(c, "users", "ScyllaDB: "+err.Error())
	}

	if existCount != 0 {
		return errors.HandleConflictError(c, "Email")
	}

	// Hash at the registration boundary; the raw password never reaches the store.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.HandleInternalError(c, "password", "hashing error")
	}

	userID := gocql.TimeUUID()

	applied, err := global.Session.Query(`
		INSERT INTO users_public (username,user_id,profile_picture)
		VALUES(?,?,?)
		IF NOT EXISTS;`,
		req.Username,
		userID,
		"",
	).WithContext(global.Context).MapScanCAS(make(map[string]interface{}))

	if err != nil {
		return errors.HandleInternalError(c, "users_public", "ScyllaDB: "+err.Error())
	}
	if !applied {
		return errors.HandleConflictError(c, "Username")
	}

	applied, err = global.Session.Query(`
		INSERT INTO users (email,user_id,username,password_hash,profile_picture,created)
		VALUES(?,?,?,?,?,?)
		IF NOT EXISTS;`,
		req.Email,
		userID,
		req.Username,
		string(passwordHash),
		"",
		time.Now().UTC(),
	).WithContext(global.Context).MapScanCAS(make(map[string]interface{}))

	if err != nil {
		return errors.HandleInternalError(c, "users", "ScyllaDB: "+err.Error())
	}
	if !applied {
		// lost the email race after claiming the username: release the username row
		releaseErr := global.Session.Query(`
			DELETE FROM users_public WHERE username = ?;`,
			req.Username,
		).WithContext(global.Context).Exec()
		errors.HandleBasicError(releaseErr)
		return errors.HandleConflictError(c, "Email")
	}

	err = global.Session.Query(`
		INSERT INTO users_private (user_id,username,email,profile_picture)
		VALUES(?,?,?,?);`,
		userID,
		req.Username,
		req.Email,
		"",
	).WithContext(global.Context).Exec()

	if err != nil {
		return errors.HandleInternalError(c, "users_private", "ScyllaDB: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.Message{
		Message: "User registered successfully",
	})
}

// Login authenticates by normalized email and responds with a session token.
// Unknown email and wrong password fail with the same response.
func Login(c *fiber.Ctx) error {

	req := new(schemas.LoginSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	req.Email = helpers.NormalizeEmail(req.Email)

	var (
		userID       gocql.UUID
		username     string
		passwordHash string
	)

	err := global.Session.Query(`
		SELECT user_id, username, password_hash FROM users WHERE email = ? LIMIT 1;`,
		req.Email,
	).WithContext(global.Context).Scan(&userID, &username, &passwordHash)

	if err != nil {
		if err == gocql.ErrNotFound {
			return errors.HandleInvalidCredentialsError(c)
		}
		return errors.HandleInternalError(c, "users", "ScyllaDB: "+err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		return errors.HandleInvalidCredentialsError(c)
	}

	token, err := helpers.GenerateJWT(userID.String(), username)
	if err != nil {
		return errors.HandleInternalError(c, "jwt", err.Error())
	}

	return c.JSON(schemas.TokenSchema{Token: token})
}
