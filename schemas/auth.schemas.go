package schemas

// RegisterSchema struct
type RegisterSchema struct {
	Username string `validate:"required,max=30" json:"username"`
	Email    string `validate:"required,email,max=1000" json:"email"`
	Password string `validate:"required,max=72" json:"password"`
}

// LoginSchema struct
type LoginSchema struct {
	Email    string `validate:"required,email,max=1000" json:"email"`
	Password string `validate:"required,max=72" json:"password"`
}

// TokenSchema struct
type TokenSchema struct {
	Token string `json:"token"`
}
