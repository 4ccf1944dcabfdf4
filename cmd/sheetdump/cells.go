package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdump/pkg/sheetdump"
	"github.com/ukaji3/sheetdump/pkg/sheetdump/output"
)

var (
	maxRows       int
	worksheetPart string
)

func newCellsCmd() *cobra.Command {
	cellsCmd := &cobra.Command{
		Use:   "cells [input.xlsx]",
		Short: "Print the first worksheet by decoding the archive markup",
		Long: `cells reads the shared string table and the first worksheet straight from
the xlsx archive and prints the cell grid as pipe-delimited rows.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCells,
	}

	cellsCmd.Flags().IntVar(&maxRows, "max-rows", sheetdump.DefaultMaxRows, "Maximum number of rows to print")
	cellsCmd.Flags().StringVar(&worksheetPart, "part", "", "Archive part to read (default: first sheet of the workbook)")
	return cellsCmd
}

func runCells(cmd *cobra.Command, args []string) error {
	path, err := inputPath(args)
	if err != nil {
		return err
	}

	opts := sheetdump.Options{
		WorksheetPart: worksheetPart,
		MaxRows:       maxRows,
	}

	dump, err := sheetdump.Extract(path, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	maxRow, maxCol := dump.Grid.Bounds()
	log.WithFields(logrus.Fields{
		"part":           dump.WorksheetPart,
		"shared_strings": dump.SharedStringCount,
		"rows":           maxRow,
		"cols":           maxCol,
	}).Debug("worksheet scanned")
	if !dump.SharedStringsPresent {
		log.Debug("no shared strings part, shared string cells resolve to empty text")
	}

	return output.WriteGrid(cmd.OutOrStdout(), dump.Grid, opts.RowLimit())
}
