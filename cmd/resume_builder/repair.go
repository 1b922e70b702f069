package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/jsonrepair"
)

var repairOutput string

var repairCmd = &cobra.Command{
	Use:   "repair [file]",
	Short: "Recover a résumé record from malformed model output",
	Long: `Recovers a résumé record from model output that may be fenced, truncated or
malformed JSON. Strategies are tried in order: strict parse, repaired parse, then
salvage of name, phone and email. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVarP(&repairOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := jsonrepair.ParseResume(content)
	if err != nil {
		return fmt.Errorf("failed to recover resume: %w", err)
	}
	if p := printer(cmd); p != nil {
		p.PrintParseResult(&result)
	}
	return writeJSON(cmd, repairOutput, result)
}
