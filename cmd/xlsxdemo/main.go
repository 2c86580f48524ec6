// Package main provides the CLI entry point for xlsxdemo.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetops-go/pkg/sheetops"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/config"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/sample"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/transform"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/writer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
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
		Use:   "xlsxdemo",
		Short: "Create, transform and export a sample Excel workbook",
		Long: `xlsxdemo writes a sample expense workbook, loads it back, derives
cleaned, filtered, grouped and pivoted tables, and saves them as sheets
of a new workbook next to the input.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML config file (default: built-in settings)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func initLogger(cmd *cobra.Command, args []string) error {
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := logCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	out := cmd.OutOrStdout()
	input := cfg.Demo.Input

	// 1) Create
	if err := sample.Create(input); err != nil {
		return fmt.Errorf("failed to create sample: %w", err)
	}
	fmt.Fprintf(out, "Created sample Excel: %s\n", input)

	// 2) Load
	opts := sheetops.Options{Mode: sheetops.ModeTyped, TrimHeaders: true}
	df, err := sheetops.LoadFirst(input, opts)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	fmt.Fprintf(out, "Loaded columns: %v\n", df.Columns)

	// 3) Transform
	res, err := transform.NewPipeline(cfg.Pipeline, logger).Run(df)
	if err != nil {
		return fmt.Errorf("transform failed: %w", err)
	}

	// 4) Export
	outPath := writer.OutputPath(input, cfg.Demo.OutputSuffix)
	if err := writer.WriteResult(outPath, res); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Fprintf(out, "Wrote results to: %s\n", outPath)
	return nil
}
