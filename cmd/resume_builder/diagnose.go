package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/diagnosis"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/resumetext"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	diagnoseKeywords string
	diagnoseFromJSON bool
	diagnoseFormat   string
	diagnoseOutput   string
	diagnoseScore    bool
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [file]",
	Short: "Check a résumé for common problems",
	Long:  "Runs rule-based checks over a résumé and reports a score, grade, issues and quick wins. Reads delimited text, or a JSON record with --json, from the file or stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagnoseCmd.Flags().StringVarP(&diagnoseKeywords, "keywords", "k", "", "Comma-separated target job keywords")
	diagnoseCmd.Flags().BoolVar(&diagnoseFromJSON, "json", false, "Input is a JSON record")
	diagnoseCmd.Flags().StringVarP(&diagnoseFormat, "format", "f", "json", "Output format: json or text")
	diagnoseCmd.Flags().StringVarP(&diagnoseOutput, "out", "o", "", "Output file (default stdout)")
	diagnoseCmd.Flags().BoolVar(&diagnoseScore, "score", false, "Write the condensed score instead of the full report")
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	if diagnoseFormat != "json" && diagnoseFormat != "text" {
		return fmt.Errorf("invalid format %q: must be json or text", diagnoseFormat)
	}

	rec, err := readResume(cmd, args, diagnoseFromJSON)
	if err != nil {
		return err
	}

	opts := diagnosis.Options{Keywords: splitList(diagnoseKeywords)}
	if diagnoseScore {
		return writeJSON(cmd, diagnoseOutput, diagnosis.Score(rec, opts))
	}
	result := diagnosis.Report(rec, opts)
	if diagnoseFormat == "text" {
		observability.NewPrinter(cmd.OutOrStdout()).PrintDiagnosis(&result)
		return nil
	}
	return writeJSON(cmd, diagnoseOutput, result)
}

// readResume reads delimited text, or a JSON record when fromJSON is set.
func readResume(cmd *cobra.Command, args []string, fromJSON bool) (types.ResumeRecord, error) {
	if fromJSON {
		return readRecord(cmd, args)
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return types.ResumeRecord{}, err
	}
	return resumetext.Parse(text), nil
}
