package schemas

// ChatAccessSchema is the access-gate verdict for a direct-chat visit
type ChatAccessSchema struct {
	Access string `json:"access"`
}

// ChatMessageSchema is the single realtime event type: a free-text message
type ChatMessageSchema struct {
	Message string `json:"message"`
}
