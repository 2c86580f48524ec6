// Package main provides the CLI entry point for xlsx2html.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetops-go/pkg/sheetops"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sheet      string
	outputPath string
	na         string
	verbose    bool

	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsx2html [input.xlsx]",
		Short: "Convert Excel sheets to HTML tables",
		Long: `xlsx2html reads one sheet (or every sheet) of an Excel file as text
and renders it as a styled HTML table.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&sheet, "sheet", "", `Sheet name to load, or "all" for every sheet (default: first sheet)`)
	rootCmd.Flags().StringVar(&outputPath, "out", "", "Output HTML file (default: stdout)")
	rootCmd.Flags().StringVar(&na, "na", "", "Text for missing cells")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func initLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts := sheetops.DefaultOptions()
	opts.Sheet = sheet

	wb, err := sheetops.Load(inputPath, opts)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	logger.Debug("loaded workbook",
		zap.String("book", wb.BookName),
		zap.Strings("sheets", wb.Names()),
	)

	var html string
	if opts.WantsAllSheets() {
		html, err = render.Workbook(wb, na)
	} else {
		t, _ := wb.Sheet(wb.Names()[0])
		html, err = render.Page(t, na)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if outputPath == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Written HTML to: %s\n", outputPath)
	return nil
}
