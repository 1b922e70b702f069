package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/resumetext"
)

var (
	translateFromJSON bool
	translateOutput   string
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Swap résumé section headers and labels for English",
	Long:  "Rewrites the headers and field labels of delimited résumé text, or a JSON record with --json, in English. Entry values are left as written.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTranslate,
}

func init() {
	translateCmd.Flags().BoolVar(&translateFromJSON, "json", false, "Input is a JSON record")
	translateCmd.Flags().StringVarP(&translateOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	var text string
	if translateFromJSON {
		rec, err := readRecord(cmd, args)
		if err != nil {
			return err
		}
		text = resumetext.Serialize(rec)
	} else {
		var err error
		if text, err = readInput(cmd, args); err != nil {
			return err
		}
	}
	return writeOutput(cmd, translateOutput, resumetext.ToEnglish(text))
}
