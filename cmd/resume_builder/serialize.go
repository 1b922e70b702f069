package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/resumetext"
)

var serializeOutput string

var serializeCmd = &cobra.Command{
	Use:   "serialize [file]",
	Short: "Serialize a JSON record into delimited résumé text",
	Long:  "Validates a JSON record against the record schema and writes it as delimited résumé text. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSerialize,
}

func init() {
	serializeCmd.Flags().StringVarP(&serializeOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(serializeCmd)
}

func runSerialize(cmd *cobra.Command, args []string) error {
	rec, err := readRecord(cmd, args)
	if err != nil {
		return err
	}
	return writeOutput(cmd, serializeOutput, resumetext.Serialize(rec))
}
