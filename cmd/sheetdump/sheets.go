package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdump/pkg/sheetdump"
	"github.com/ukaji3/sheetdump/pkg/sheetdump/output"
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "Print every sheet of a workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSheets,
	}
}

// runSheets reports read failures on stdout and still exits cleanly.
func runSheets(cmd *cobra.Command, args []string) error {
	path, err := inputPath(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Reading %s\n", path)

	wb, err := sheetdump.LoadWorkbook(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("workbook load failed")
		fmt.Fprintf(out, "Error reading Excel file: %v\n", err)
		return nil
	}
	log.WithField("sheets", len(wb.Sheets)).Debug("workbook loaded")

	if err := output.WriteWorkbook(out, wb); err != nil {
		fmt.Fprintf(out, "Error reading Excel file: %v\n", err)
	}
	return nil
}
