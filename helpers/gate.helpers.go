package helpers

// GateDecision is the terminal state of a chat-page admission check
type GateDecision int

const (
	// GateDenied permits only the refusal view. Any fault lands here.
	GateDenied GateDecision = iota
	// GateGranted permits the direct-chat view scoped to the target
	GateGranted
)

// ResolveChatAccess runs the fail-closed admission check for a direct-chat
// visit: resolve the caller from the token, then require friendship with the
// target. Each visit re-runs the check; there is no retry.
func ResolveChatAccess(token string, targetID string, isFriend func(callerID string, targetID string) (bool, error)) (GateDecision, string) {

	callerID, _, err := ParseJWT(token)
	if err != nil {
		return GateDenied, ""
	}

	return ResolveChatAccessFor(callerID, targetID, isFriend), callerID
}

// ResolveChatAccessFor runs the friendship half of the admission check for a
// caller whose identity has already been resolved
func ResolveChatAccessFor(callerID string, targetID string, isFriend func(callerID string, targetID string) (bool, error)) GateDecision {

	friends, err := isFriend(callerID, targetID)
	if err != nil || !friends {
		return GateDenied
	}

	return GateGranted
}
