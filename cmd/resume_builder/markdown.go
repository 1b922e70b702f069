package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/resumetext"
)

var (
	markdownFromJSON bool
	markdownOutput   string
)

var markdownCmd = &cobra.Command{
	Use:   "markdown [file]",
	Short: "Export a résumé as Markdown",
	Long:  "Converts delimited résumé text, or a JSON record with --json, to Markdown. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMarkdown,
}

func init() {
	markdownCmd.Flags().BoolVar(&markdownFromJSON, "json", false, "Input is a JSON record")
	markdownCmd.Flags().StringVarP(&markdownOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(markdownCmd)
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	var text string
	if markdownFromJSON {
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
	return writeOutput(cmd, markdownOutput, resumetext.ToMarkdown(text))
}
