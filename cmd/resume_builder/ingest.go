package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/ingestion"
)

var (
	ingestText   bool
	ingestOutput string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Clean uploaded résumé text",
	Long:  "Cleans extracted résumé text (HTML files are converted first), rejects text too short to be a résumé and truncates very long text. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestText, "text", false, "Write only the cleaned text")
	ingestCmd.Flags().StringVarP(&ingestOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	var raw string
	var err error
	if len(args) == 1 && args[0] != "-" {
		raw, err = ingestion.ReadFile(args[0])
	} else {
		raw, err = readInput(cmd, args)
	}
	if err != nil {
		return err
	}

	upload, err := ingestion.PrepareUpload(raw)
	if err != nil {
		return err
	}
	if ingestText {
		return writeOutput(cmd, ingestOutput, upload.Text+"\n")
	}
	return writeJSON(cmd, ingestOutput, upload)
}
