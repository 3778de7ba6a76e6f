package domain

type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

// ChatOptions tunes one completion call. Temperature passes through to the
// provider unvalidated; JSONMode forces a json_object response format.
type ChatOptions struct {
	Temperature float64
	JSONMode    bool
}

// ClientConfig is the effective credential set for one call, resolved fresh
// every time so mid-session settings changes take effect immediately.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}
