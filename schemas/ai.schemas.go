package schemas

// AIChatSchema struct
type AIChatSchema struct {
	Message string `validate:"required,max=4000" json:"message"`
}

// AIChatResponseSchema struct
type AIChatResponseSchema struct {
	Text string `json:"text"`
}
