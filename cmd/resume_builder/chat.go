package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/chat"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	chatResumeFile string
	chatTargetJob  string
	chatInterview  bool
	chatDraftKey   string
	chatNoSave     bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Build a résumé in conversation with the model",
	Long: `Starts an interactive conversation. Each line you type is one message; the
assistant asks questions and returns the updated résumé between résumé markers.
The conversation and résumé are autosaved as a draft after every turn and
restored on the next start. Type /quit to leave, /resume to print the current
résumé, or /reset to clear the draft.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatResumeFile, "resume", "", "Start from the delimited résumé text in this file")
	chatCmd.Flags().StringVar(&chatTargetJob, "target-job", "", "Target job description to tailor the résumé to")
	chatCmd.Flags().BoolVar(&chatInterview, "interview", false, "Mock interview mode: the assistant closes with structured feedback")
	chatCmd.Flags().StringVar(&chatDraftKey, "draft", storage.DefaultDraftKey, "Draft key used for autosave")
	chatCmd.Flags().BoolVar(&chatNoSave, "no-save", false, "Do not autosave the conversation")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	drafts := storage.NewDrafts(store)

	draft, err := startDraft(cmd, drafts)
	if err != nil {
		return err
	}
	for _, msg := range draft.Messages {
		printMessage(cmd, msg)
	}

	opts := chat.Options{TargetJob: draft.TargetJob, Interview: chatInterview}
	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		_, _ = fmt.Fprint(out, "\n> ")
		if !in.Scan() {
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())

		switch line {
		case "":
			continue
		case "/quit":
			return nil
		case "/resume":
			_, _ = fmt.Fprintln(out, draft.Resume)
			continue
		case "/reset":
			if err := drafts.Clear(ctx, chatDraftKey); err != nil {
				return err
			}
			draft = types.Draft{Messages: []types.ChatMessage{chat.Greeting()}, TargetJob: draft.TargetJob}
			printMessage(cmd, draft.Messages[0])
			continue
		}

		history := append(draft.Messages, types.ChatMessage{Role: types.RoleUser, Content: line})
		reply, err := chat.Turn(ctx, client, history, draft.Resume, opts)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}

		assistant := types.ChatMessage{Role: types.RoleAssistant, Content: reply.Message}
		draft.Messages = append(history, assistant)
		draft.Resume = reply.Resume
		printMessage(cmd, assistant)
		if reply.Feedback != nil {
			_, _ = fmt.Fprintf(out, "\n面试评分：%d\n", reply.Feedback.OverallScore)
		}

		if !chatNoSave {
			if _, err := drafts.Save(ctx, chatDraftKey, draft); err != nil {
				logger.Warn("autosave failed", zap.String("key", chatDraftKey), zap.Error(err))
			}
		}
	}
}

// startDraft restores the saved draft, or starts a new one from --resume and
// the greeting. Flags override the saved résumé and target job.
func startDraft(cmd *cobra.Command, drafts *storage.Drafts) (types.Draft, error) {
	draft := types.Draft{Messages: []types.ChatMessage{chat.Greeting()}}
	if !chatNoSave {
		saved, err := drafts.Load(cmd.Context(), chatDraftKey)
		switch {
		case err == nil:
			draft = saved
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Restored draft %s\n", chatDraftKey)
		case !errors.Is(err, storage.ErrNotFound):
			return types.Draft{}, err
		}
	}

	if chatResumeFile != "" {
		data, err := os.ReadFile(chatResumeFile)
		if err != nil {
			return types.Draft{}, fmt.Errorf("failed to read resume file: %w", err)
		}
		draft.Resume = strings.TrimSpace(string(data))
	}
	if chatTargetJob != "" {
		draft.TargetJob = chatTargetJob
	}
	return draft, nil
}

func printMessage(cmd *cobra.Command, msg types.ChatMessage) {
	if msg.Role == types.RoleUser {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n> %s\n", msg.Content)
		return
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", msg.Content)
}
