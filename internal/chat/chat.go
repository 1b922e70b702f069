// Package chat relays one turn of the résumé-building conversation to the
// model and pulls any résumé or interview-feedback block out of the reply.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/resumetext"
	"github.com/jonathan/resume-builder/internal/types"
)

// FallbackMessage stands in for an empty model reply
const FallbackMessage = "抱歉，我没有理解你的意思，请再说一次。"

// ErrEmptyHistory is returned when there is no user message to answer
var ErrEmptyHistory = errors.New("chat history has no user message")

var validate = validator.New()

// Options adds optional context to a turn
type Options struct {
	TargetJob string
	// Interview asks the model to close with a feedback block.
	Interview bool
}

// Reply is the outcome of one turn
type Reply struct {
	Message string `json:"message"`
	// Resume is the new résumé block if the reply had one, else the previous text.
	Resume   string                   `json:"resume"`
	Updated  bool                     `json:"updated"`
	Record   *types.ResumeRecord      `json:"record,omitempty"`
	Feedback *types.InterviewFeedback `json:"feedback,omitempty"`
}

// Turn sends history to the model with the builder system prompt and the
// current résumé as context. System-role messages in history are folded into
// the system prompt. A malformed feedback block is ignored.
func Turn(ctx context.Context, client llm.Client, history []types.ChatMessage, resumeText string, opts Options) (Reply, error) {
	system, conversation, err := prepare(history, resumeText, opts)
	if err != nil {
		return Reply{}, err
	}

	message, err := client.GenerateChat(ctx, system, conversation, llm.TierStandard)
	if err != nil {
		return Reply{}, fmt.Errorf("chat turn: %w", err)
	}
	if strings.TrimSpace(message) == "" {
		message = FallbackMessage
	}

	reply := Reply{Message: message, Resume: resumeText}
	if block, ok := ingestion.ExtractResumeBlock(message); ok && block != "" {
		reply.Resume = block
		reply.Updated = true
	}
	if strings.TrimSpace(reply.Resume) != "" {
		rec := resumetext.Parse(reply.Resume)
		reply.Record = &rec
	}
	if feedback, ok, err := ingestion.ExtractFeedbackBlock(message); ok && err == nil {
		reply.Feedback = feedback
	}
	return reply, nil
}

func prepare(history []types.ChatMessage, resumeText string, opts Options) (string, []types.ChatMessage, error) {
	var extra []string
	conversation := make([]types.ChatMessage, 0, len(history))
	for i, msg := range history {
		if err := validate.Struct(msg); err != nil {
			return "", nil, fmt.Errorf("message %d: %w", i, err)
		}
		if msg.Role == types.RoleSystem {
			extra = append(extra, msg.Content)
			continue
		}
		conversation = append(conversation, msg)
	}
	if len(conversation) == 0 || conversation[len(conversation)-1].Role != types.RoleUser {
		return "", nil, ErrEmptyHistory
	}

	system, err := SystemPrompt(resumeText, opts)
	if err != nil {
		return "", nil, err
	}
	if len(extra) > 0 {
		system += "\n\n" + strings.Join(extra, "\n\n")
	}
	return system, conversation, nil
}

// SystemPrompt assembles the system instruction for a turn.
func SystemPrompt(resumeText string, opts Options) (string, error) {
	parts := []string{}
	system, err := prompts.Get(prompts.ChatFile, "system")
	if err != nil {
		return "", err
	}
	parts = append(parts, system)

	if job := strings.TrimSpace(opts.TargetJob); job != "" {
		p, err := prompts.Render(prompts.ChatFile, "target-job", map[string]string{"TargetJob": job})
		if err != nil {
			return "", err
		}
		parts = append(parts, p)
	}
	if opts.Interview {
		p, err := prompts.Get(prompts.ChatFile, "interview-feedback")
		if err != nil {
			return "", err
		}
		parts = append(parts, p)
	}
	if resume := strings.TrimSpace(resumeText); resume != "" {
		p, err := prompts.Render(prompts.ChatFile, "resume-context", map[string]string{"Resume": resume})
		if err != nil {
			return "", err
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n\n"), nil
}

// Greeting is the assistant's opening message for a new conversation.
func Greeting() types.ChatMessage {
	return types.ChatMessage{
		Role:    types.RoleAssistant,
		Content: prompts.MustGet(prompts.ChatFile, "greeting"),
	}
}
