package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/resumetext"
)

var (
	editOpsFile string
	editText    bool
	editOutput  string
)

var editCmd = &cobra.Command{
	Use:   "edit [record.json]",
	Short: "Apply edit operations to a JSON record",
	Long: `Applies a JSON array of edit operations to a record, in order. Each operation is
{"op": "set|add|update|remove", "section": "...", "index": 0, "sub_index": 0, "value": ...}.
Reads the record from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editOpsFile, "ops", "", "Path to the JSON array of operations (required)")
	editCmd.Flags().BoolVar(&editText, "text", false, "Write delimited résumé text instead of JSON")
	editCmd.Flags().StringVarP(&editOutput, "out", "o", "", "Output file (default stdout)")
	_ = editCmd.MarkFlagRequired("ops")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(editOpsFile)
	if err != nil {
		return fmt.Errorf("failed to read ops file: %w", err)
	}
	var ops []editor.Op
	if err := json.Unmarshal(data, &ops); err != nil {
		return fmt.Errorf("failed to unmarshal ops JSON: %w", err)
	}

	rec, err := readRecord(cmd, args)
	if err != nil {
		return err
	}
	rec, err = editor.ApplyAll(rec, ops)
	if err != nil {
		return err
	}

	if editText {
		return writeOutput(cmd, editOutput, resumetext.Serialize(rec))
	}
	return writeJSON(cmd, editOutput, rec)
}
