package report

import (
	"io"
	"time"

	"github.com/ppiankov/faasspectre/internal/analyzer"
)

// Reporter is the interface for output formatters.
type Reporter interface {
	Generate(data Data) error
}

// Data holds all information needed to generate a report.
type Data struct {
	Tool      string             `json:"tool"`
	Version   string             `json:"version"`
	Timestamp time.Time          `json:"timestamp"`
	Source    Source             `json:"source"`
	Config    ReportConfig       `json:"config"`
	Views     analyzer.Views     `json:"views"`
	Findings  []analyzer.Finding `json:"findings"`
	Summary   analyzer.Summary   `json:"summary"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// Source identifies the metrics input being analyzed.
type Source struct {
	Path     string `json:"path"`
	Repaired bool   `json:"repaired"`
}

// ReportConfig captures the analysis configuration used.
type ReportConfig struct {
	MinMonthlySavings float64 `json:"min_monthly_savings"`
}

// TextReporter generates human-readable terminal output.
type TextReporter struct {
	Writer io.Writer
}

// JSONReporter generates spectre/v1 envelope JSON output.
type JSONReporter struct {
	Writer io.Writer
}

// SARIFReporter generates SARIF v2.1.0 output from the advisory
// findings.
type SARIFReporter struct {
	Writer io.Writer
}

// CSVReporter exports each view as a CSV file under Dir.
type CSVReporter struct {
	Dir string
}
