package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/faasspectre/internal/analyzer"
	"github.com/ppiankov/faasspectre/internal/config"
	"github.com/ppiankov/faasspectre/internal/dataset"
	"github.com/ppiankov/faasspectre/internal/report"
)

var analyzeFlags struct {
	format     string
	outputFile string
	minSavings float64
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <metrics.csv>",
	Short: "Analyze a serverless metrics CSV and render the cost report",
	Long: `Load a ten-column serverless metrics CSV, repair the degenerate single-column
variant if detected, and render the six analytical views plus advisory findings.

Use "-" to read the CSV from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlags.format, "format", "text", "Output format: text, json, sarif, csv")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.outputFile, "output", "o", "", "Output file path, or directory for csv format (default: stdout)")
	analyzeCmd.Flags().Float64Var(&analyzeFlags.minSavings, "min-savings", 0, "Minimum estimated monthly savings for advisory findings ($)")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		slog.Warn("Failed to load config file", "error", err)
	}
	applyAnalyzeConfigDefaults(cfg)

	path := args[0]
	table, err := loadTable(path)
	if err != nil {
		return err
	}
	slog.Info("Loaded metrics table", "path", path, "records", len(table.Records), "repaired", table.Repaired)

	analysis := analyzer.Analyze(table, analyzer.Config{
		MinMonthlySavings: analyzeFlags.minSavings,
	})

	data := report.Data{
		Tool:      "faasspectre",
		Version:   version,
		Timestamp: time.Now().UTC(),
		Source: report.Source{
			Path:     path,
			Repaired: table.Repaired,
		},
		Config: report.ReportConfig{
			MinMonthlySavings: analyzeFlags.minSavings,
		},
		Views:    analysis.Views,
		Findings: analysis.Findings,
		Summary:  analysis.Summary,
	}
	if table.Repaired {
		data.Warnings = append(data.Warnings, "input parsed as a single column; applied comma re-split repair")
	}

	reporter, err := selectReporter(analyzeFlags.format, analyzeFlags.outputFile)
	if err != nil {
		return err
	}
	return reporter.Generate(data)
}

func loadTable(path string) (*dataset.Table, error) {
	if path == "-" {
		table, err := dataset.Load(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("load stdin: %w", err)
		}
		return table, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	table, err := dataset.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return table, nil
}

func applyAnalyzeConfigDefaults(cfg config.Config) {
	if analyzeFlags.format == "text" && cfg.Format != "" {
		analyzeFlags.format = cfg.Format
	}
	if analyzeFlags.outputFile == "" && cfg.Output != "" {
		analyzeFlags.outputFile = cfg.Output
	}
	if analyzeFlags.minSavings == 0 && cfg.MinMonthlySavings > 0 {
		analyzeFlags.minSavings = cfg.MinMonthlySavings
	}
}

func selectReporter(format, outputFile string) (report.Reporter, error) {
	if format == "csv" {
		dir := outputFile
		if dir == "" {
			dir = "."
		}
		return &report.CSVReporter{Dir: dir}, nil
	}

	w := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, fmt.Errorf("create output file: %w", err)
		}
		w = f
	}

	switch format {
	case "text":
		return &report.TextReporter{Writer: w}, nil
	case "json":
		return &report.JSONReporter{Writer: w}, nil
	case "sarif":
		return &report.SARIFReporter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text, json, sarif, or csv)", format)
	}
}
