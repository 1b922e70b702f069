package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

var draftRecord bool

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage saved drafts and records",
	Long:  "Reads, writes and deletes autosave drafts in the configured store. With --record the commands work on saved résumé records instead.",
}

var draftGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a saved draft as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDraftGet,
}

var draftSetCmd = &cobra.Command{
	Use:   "set [key] [file]",
	Short: "Save a draft from JSON",
	Long:  "Saves a draft (or with --record, a record) read as JSON from the file or stdin. Empty drafts are not saved.",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runDraftSet,
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Delete a saved draft",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDraftDelete,
}

func init() {
	draftCmd.PersistentFlags().BoolVar(&draftRecord, "record", false, "Operate on saved records instead of drafts")
	draftCmd.AddCommand(draftGetCmd, draftSetCmd, draftDeleteCmd)
	rootCmd.AddCommand(draftCmd)
}

func draftKey(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return storage.DefaultDraftKey
}

func runDraftGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	drafts := storage.NewDrafts(store)

	key := draftKey(args)
	if draftRecord {
		rec, err := drafts.LoadRecord(ctx, key)
		if err != nil {
			return fmt.Errorf("record %s: %w", key, err)
		}
		return writeJSON(cmd, "", rec)
	}

	draft, err := drafts.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("draft %s: %w", key, err)
	}
	return writeJSON(cmd, "", draft)
}

func runDraftSet(cmd *cobra.Command, args []string) error {
	key := draftKey(args)
	var input []string
	if len(args) > 1 {
		input = args[1:]
	}

	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	drafts := storage.NewDrafts(store)

	if draftRecord {
		rec, err := readRecord(cmd, input)
		if err != nil {
			return err
		}
		if err := drafts.SaveRecord(ctx, key, rec); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved record %s\n", key)
		return nil
	}

	content, err := readInput(cmd, input)
	if err != nil {
		return err
	}
	var draft types.Draft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		return fmt.Errorf("failed to unmarshal draft JSON: %w", err)
	}
	saved, err := drafts.Save(ctx, key, draft)
	if err != nil {
		return err
	}
	if !saved {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Draft %s is empty, not saved\n", key)
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved draft %s\n", key)
	return nil
}

func runDraftDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	drafts := storage.NewDrafts(store)

	key := draftKey(args)
	if draftRecord {
		err = drafts.ClearRecord(ctx, key)
	} else {
		err = drafts.Clear(ctx, key)
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", key)
	return nil
}
