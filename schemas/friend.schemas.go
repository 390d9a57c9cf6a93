package schemas

// FriendSetSchema is one user's id with their full friend-id set
type FriendSetSchema struct {
	UserID  string   `json:"id"`
	Friends []string `json:"friends"`
}

// AddFriendResponseSchema struct
type AddFriendResponseSchema struct {
	User   FriendSetSchema `json:"user"`
	Friend FriendSetSchema `json:"friend"`
}

// CheckFriendshipSchema struct
type CheckFriendshipSchema struct {
	IsFriend bool `json:"isFriend"`
}
