package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/resumetext"
)

var (
	autoParseText   bool
	autoParseOutput string
)

var autoParseCmd = &cobra.Command{
	Use:   "auto-parse [file]",
	Short: "Parse a whole résumé with the model",
	Long:  "Sends the résumé to the model in one call and recovers a record from its answer. HTML files are converted to text first. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAutoParse,
}

func init() {
	autoParseCmd.Flags().BoolVar(&autoParseText, "text", false, "Write delimited résumé text instead of JSON")
	autoParseCmd.Flags().StringVarP(&autoParseOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(autoParseCmd)
}

func runAutoParse(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 && args[0] != "-" {
		var err error
		if text, err = ingestion.ReadFile(args[0]); err != nil {
			return err
		}
	} else {
		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		text = ingestion.CleanText(raw)
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := parsing.NewService(client, logger, appConfig.ParseTextLimit).ParseResume(ctx, text)
	if err != nil {
		return err
	}
	if p := printer(cmd); p != nil {
		p.PrintParseResult(result)
	}

	if autoParseText {
		return writeOutput(cmd, autoParseOutput, resumetext.Serialize(result.Record))
	}
	return writeJSON(cmd, autoParseOutput, result)
}
