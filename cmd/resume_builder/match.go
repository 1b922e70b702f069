package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/diagnosis"
)

var (
	matchKeywords string
	matchFromJSON bool
	matchOutput   string
)

var matchCmd = &cobra.Command{
	Use:   "match [file]",
	Short: "Compare a résumé with target job keywords",
	Long:  "Reports which target job keywords the résumé covers, a match score, suggestions for missing keywords and the achievements that mention matched ones. Reads delimited text, or a JSON record with --json, from the file or stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchKeywords, "keywords", "k", "", "Comma-separated target job keywords (required)")
	matchCmd.Flags().BoolVar(&matchFromJSON, "json", false, "Input is a JSON record")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	keywords := splitList(matchKeywords)
	if len(keywords) == 0 {
		return fmt.Errorf("at least one keyword is required (--keywords)")
	}

	rec, err := readResume(cmd, args, matchFromJSON)
	if err != nil {
		return err
	}
	return writeJSON(cmd, matchOutput, diagnosis.MatchJob(rec, keywords))
}
