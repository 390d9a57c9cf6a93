package schemas

// PublicUserSchema is the non-sensitive projection of a user
type PublicUserSchema struct {
	UserID         string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Online         bool   `json:"online"`
}

// UsersResponseSchema struct
type UsersResponseSchema struct {
	Users []PublicUserSchema `json:"users"`
}
