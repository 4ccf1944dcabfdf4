// Package main provides the CLI entry point for sheetdump.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// fileEnvVar names the workbook to read when no path argument is given.
const fileEnvVar = "SHEETDUMP_FILE"

var log = logrus.New()

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetdump",
		Short: "Print the contents of Excel files",
		Long: `sheetdump prints xlsx workbooks as plain text for manual inspection,
either through excelize (sheets) or by decoding the archive markup directly (cells).`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newSheetsCmd(), newCellsCmd())
	return rootCmd
}

// setup configures logging and loads .env before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn(".env file not loaded")
	}
	return nil
}

// inputPath returns the workbook path from the arguments, falling back to
// the environment.
func inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if path := os.Getenv(fileEnvVar); path != "" {
		log.WithField("path", path).Debugf("using %s", fileEnvVar)
		return path, nil
	}
	return "", fmt.Errorf("no input file: pass a path or set %s", fileEnvVar)
}
