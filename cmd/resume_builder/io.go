package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// newClient builds the model client. Tests replace it.
var newClient = func(ctx context.Context) (llm.Client, error) {
	if appConfig.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or api_key in the config file)")
	}
	return llm.NewClient(ctx, appConfig.LLMConfig(), appConfig.APIKey)
}

// openStore opens the configured storage backend
func openStore(ctx context.Context) (storage.Store, error) {
	return storage.Open(ctx, appConfig.StorageDriver, appConfig.DSN(), logger)
}

// readInput reads the file named by the first argument, or stdin when there is
// no argument or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

// readRecord reads a record as JSON, validating it against the record schema.
func readRecord(cmd *cobra.Command, args []string) (types.ResumeRecord, error) {
	content, err := readInput(cmd, args)
	if err != nil {
		return types.ResumeRecord{}, err
	}
	if err := schemas.ValidateRecordJSON([]byte(content)); err != nil {
		return types.ResumeRecord{}, err
	}

	var rec types.ResumeRecord
	if err := json.Unmarshal([]byte(content), &rec); err != nil {
		return types.ResumeRecord{}, fmt.Errorf("failed to unmarshal record JSON: %w", err)
	}
	rec.Normalize()
	return rec, nil
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(cmd, path, string(data)+"\n")
}

// printer returns a Printer on stderr when verbose output is on.
func printer(cmd *cobra.Command) *observability.Printer {
	if !appConfig.Verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == '，' }) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
