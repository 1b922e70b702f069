package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/resumetext"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse delimited résumé text into a JSON record",
	Long:  "Parses delimited résumé text (a name line, a contact line and 【Section】 headers) into a structured record. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	rec := resumetext.Parse(text)
	if p := printer(cmd); p != nil {
		p.PrintRecord(&rec)
	}
	return writeJSON(cmd, parseOutput, rec)
}
