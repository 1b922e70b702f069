package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/ingestion"
)

var (
	extractFeedback bool
	extractOutput   string
)

var errNoBlock = errors.New("no block found")

var extractBlockCmd = &cobra.Command{
	Use:   "extract-block [file]",
	Short: "Extract the résumé or interview-feedback block from a chat reply",
	Long:  "Prints the résumé text framed by the résumé markers in a chat reply, or with --feedback the decoded interview-feedback JSON. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtractBlock,
}

func init() {
	extractBlockCmd.Flags().BoolVar(&extractFeedback, "feedback", false, "Extract the interview-feedback block instead")
	extractBlockCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(extractBlockCmd)
}

func runExtractBlock(cmd *cobra.Command, args []string) error {
	reply, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if extractFeedback {
		feedback, ok, err := ingestion.ExtractFeedbackBlock(reply)
		if !ok {
			return fmt.Errorf("feedback: %w", errNoBlock)
		}
		if err != nil {
			return fmt.Errorf("failed to decode feedback block: %w", err)
		}
		return writeJSON(cmd, extractOutput, feedback)
	}

	block, ok := ingestion.ExtractResumeBlock(reply)
	if !ok {
		return fmt.Errorf("resume: %w", errNoBlock)
	}
	return writeOutput(cmd, extractOutput, block+"\n")
}
