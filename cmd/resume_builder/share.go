package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/storage"
)

var (
	shareTitle  string
	shareSource string
	shareDraft  string
	shareTTL    time.Duration
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Publish résumés under share codes",
	Long:  "Creates, reads and withdraws share codes in the configured store. Each source is shared under at most one code.",
}

var shareCreateCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Share résumé text and print the new share as JSON",
	Long:  "Shares résumé text read from the file or stdin. With --draft the saved draft's résumé is shared and the draft key becomes the source.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShareCreate,
}

var shareGetCmd = &cobra.Command{
	Use:   "get <code>",
	Short: "Print a shared résumé as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareGet,
}

var shareDeleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Withdraw a share code",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareDelete,
}

func init() {
	shareCreateCmd.Flags().StringVar(&shareTitle, "title", "", "Title shown with the share")
	shareCreateCmd.Flags().StringVar(&shareSource, "source", "", "Key identifying what is shared; repeated shares of a source reuse its code")
	shareCreateCmd.Flags().StringVar(&shareDraft, "draft", "", "Share the résumé of this saved draft")
	shareCreateCmd.Flags().DurationVar(&shareTTL, "ttl", 0, "Expire the share after this long (default never)")
	shareCmd.AddCommand(shareCreateCmd, shareGetCmd, shareDeleteCmd)
	rootCmd.AddCommand(shareCmd)
}

func runShareCreate(cmd *cobra.Command, args []string) error {
	if shareTTL < 0 {
		return fmt.Errorf("--ttl must not be negative")
	}

	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	in := storage.ShareInput{Source: shareSource, Title: shareTitle, TTL: shareTTL}
	if shareDraft != "" {
		draft, err := storage.NewDrafts(store).Load(ctx, shareDraft)
		if err != nil {
			return fmt.Errorf("draft %s: %w", shareDraft, err)
		}
		in.Content, in.Template = draft.Resume, draft.Template
		if in.Source == "" {
			in.Source = shareDraft
		}
	} else if in.Content, err = readInput(cmd, args); err != nil {
		return err
	}

	share, err := storage.NewShares(store).Create(ctx, in)
	if err != nil {
		return err
	}
	return writeJSON(cmd, "", share)
}

func runShareGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	share, err := storage.NewShares(store).Lookup(ctx, args[0], true)
	if err != nil {
		return fmt.Errorf("share %s: %w", args[0], err)
	}
	return writeJSON(cmd, "", share)
}

func runShareDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := storage.NewShares(store).Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("share %s: %w", args[0], err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted share %s\n", args[0])
	return nil
}
