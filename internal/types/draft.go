package types

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is one turn of the builder conversation
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content"`
}

// Draft is the autosave payload for an in-progress résumé conversation
type Draft struct {
	Resume    string        `json:"resume"`
	Messages  []ChatMessage `json:"messages"`
	Template  string        `json:"template,omitempty"`
	TargetJob string        `json:"targetJob,omitempty"`
	Timestamp int64         `json:"timestamp"`
}

// IsEmpty reports whether the draft carries nothing worth saving: no résumé text
// and at most the assistant greeting.
func (d Draft) IsEmpty() bool {
	return d.Resume == "" && len(d.Messages) <= 1
}
