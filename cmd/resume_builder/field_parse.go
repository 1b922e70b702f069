package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/fieldparse"
	"github.com/jonathan/resume-builder/internal/ingestion"
)

var (
	fieldParseAuto   bool
	fieldParseOutput string
)

var fieldParseCmd = &cobra.Command{
	Use:   "field-parse <file>",
	Short: "Parse a résumé one field at a time with model proposals",
	Long: `Walks the résumé fields in order (name, phone, email, summary, education,
experience, projects, skills). For each field the model proposes a value and you
answer on stdin:

  <enter> or y   accept the proposal
  s              skip the field, keeping its current value
  b              go back one field
  q              cancel and discard everything
  anything else  use it as the value (JSON array for list fields)

End of input accepts the remaining proposals. With --auto every proposal is accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runFieldParse,
}

func init() {
	fieldParseCmd.Flags().BoolVar(&fieldParseAuto, "auto", false, "Accept every proposal without prompting")
	fieldParseCmd.Flags().StringVarP(&fieldParseOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(fieldParseCmd)
}

func runFieldParse(cmd *cobra.Command, args []string) error {
	text, err := ingestion.ReadFile(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	extractor := &fieldparse.LLMExtractor{Client: client, Limit: appConfig.FieldTextLimit}
	reviewer := &promptReviewer{
		in:   bufio.NewScanner(cmd.InOrStdin()),
		out:  cmd.ErrOrStderr(),
		auto: fieldParseAuto,
	}

	rec, err := fieldparse.Run(ctx, extractor, text, reviewer, logger)
	if err != nil {
		return fmt.Errorf("field parse failed: %w", err)
	}
	if p := printer(cmd); p != nil {
		p.PrintRecord(&rec)
	}
	return writeJSON(cmd, fieldParseOutput, rec)
}

// promptReviewer asks about each proposal on a terminal
type promptReviewer struct {
	in   *bufio.Scanner
	out  io.Writer
	auto bool
	eof  bool
}

func (r *promptReviewer) Review(_ context.Context, field fieldparse.Field, proposal any, extractErr error) (fieldparse.Review, error) {
	_, _ = fmt.Fprintf(r.out, "\n[%s] ", field.Label)
	if extractErr != nil {
		_, _ = fmt.Fprintf(r.out, "extraction failed: %v\n", extractErr)
	} else {
		_, _ = fmt.Fprintf(r.out, "%s\n", formatProposal(proposal))
	}

	if r.auto || r.eof {
		return fieldparse.Review{Decision: fieldparse.DecisionAccept}, nil
	}

	_, _ = fmt.Fprint(r.out, "accept [y] / skip [s] / back [b] / quit [q] / new value: ")
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return fieldparse.Review{}, fmt.Errorf("failed to read answer: %w", err)
		}
		r.eof = true
		return fieldparse.Review{Decision: fieldparse.DecisionAccept}, nil
	}
	return parseAnswer(r.in.Text()), nil
}

// parseAnswer maps one line of input to a review decision
func parseAnswer(line string) fieldparse.Review {
	switch answer := strings.TrimSpace(line); strings.ToLower(answer) {
	case "", "y":
		return fieldparse.Review{Decision: fieldparse.DecisionAccept}
	case "s":
		return fieldparse.Review{Decision: fieldparse.DecisionSkip}
	case "b":
		return fieldparse.Review{Decision: fieldparse.DecisionBack}
	case "q":
		return fieldparse.Review{Decision: fieldparse.DecisionCancel}
	default:
		return fieldparse.Review{Decision: fieldparse.DecisionEdit, Value: answer}
	}
}

func formatProposal(proposal any) string {
	switch v := proposal.(type) {
	case nil:
		return "(none)"
	case string:
		return v
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
