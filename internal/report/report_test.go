package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/faasspectre/internal/analyzer"
	"github.com/ppiankov/faasspectre/internal/dataset"
)

func sampleData() Data {
	checkout := dataset.FunctionRecord{
		FunctionName:           "checkout-api",
		Environment:            "prod",
		InvocationsPerMonth:    dataset.Number(12500000),
		AvgDurationMs:          dataset.Number(240),
		MemoryMB:               dataset.Number(2048),
		ColdStartRate:          dataset.Number(4.2),
		ProvisionedConcurrency: dataset.Number(10),
		DataTransferGB:         dataset.Number(120),
		CostUSD:                dataset.Number(410.5),
	}
	resizer := dataset.FunctionRecord{
		FunctionName:   "image-resizer",
		Environment:    "prod",
		AvgDurationMs:  dataset.Number(5200),
		MemoryMB:       dataset.Number(3008),
		CostUSD:        dataset.Number(1260),
		DataTransferGB: dataset.Number(85),
	}

	return Data{
		Tool:      "faasspectre",
		Version:   "0.1.0",
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Source:    Source{Path: "serverless_metrics.csv", Repaired: true},
		Config:    ReportConfig{MinMonthlySavings: 1.0},
		Views: analyzer.Views{
			CostConcentration: []analyzer.CostRow{
				{FunctionRecord: resizer, CostPercent: dataset.Number(75.4), CumulativeCost: dataset.Number(75.4)},
			},
			RightSizing: []analyzer.RightSizingRow{
				{FunctionRecord: checkout, EstimatedSavings: dataset.Number(123.15)},
			},
			ProvisionedConcurrency: []analyzer.ConcurrencyRow{
				{FunctionRecord: checkout, Recommendation: analyzer.AdviceReducePC},
			},
			Forecast: []analyzer.ForecastRow{
				{FunctionRecord: checkout, ForecastedCost: dataset.Number(747.84)},
				{FunctionRecord: resizer},
			},
			Containerization: []dataset.FunctionRecord{resizer},
		},
		Findings: []analyzer.Finding{
			{
				ID:                      analyzer.FindingRightSizing,
				Severity:                analyzer.SeverityMedium,
				FunctionName:            "checkout-api",
				Environment:             "prod",
				Message:                 "Runs in 240ms with 2048MB allocated; memory reduction candidate",
				EstimatedMonthlySavings: 123.15,
			},
			{
				ID:           analyzer.FindingReducePC,
				Severity:     analyzer.SeverityHigh,
				FunctionName: "checkout-api",
				Environment:  "prod",
				Message:      "Cold start rate 4.2% does not justify 10 provisioned environments",
			},
		},
		Summary: analyzer.Summary{
			TotalFunctions:        2,
			TotalMonthlyCost:      1670.5,
			TotalForecastedCost:   747.84,
			TotalFindings:         2,
			TotalEstimatedSavings: 123.15,
			BySeverity:            map[string]int{"medium": 1, "high": 1},
			ByFinding:             map[string]int{string(analyzer.FindingRightSizing): 1, string(analyzer.FindingReducePC): 1},
			CostByEnvironment:     map[string]float64{"prod": 1670.5},
			InputRepaired:         true,
		},
		Warnings: []string{"input parsed as a single column; applied comma re-split repair"},
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &TextReporter{Writer: &buf}

	if err := r.Generate(sampleData()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"faasspectre",
		"1. Cost concentration",
		"2. Memory right-sizing",
		"3. Provisioned concurrency",
		"4. Low-value workloads",
		"5. Cost forecast",
		"6. Containerization candidates",
		"checkout-api",
		"image-resizer",
		"reduce/remove",
		"Summary",
		"Warnings (1):",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("text output missing %q", want)
		}
	}
	// Empty sections render a placeholder, missing metrics render "-".
	if !strings.Contains(output, "(none)") {
		t.Error("text output missing (none) placeholder for the empty low-value view")
	}
}

func TestTextReporterRendersMissingAsDash(t *testing.T) {
	var buf bytes.Buffer
	r := &TextReporter{Writer: &buf}
	if err := r.Generate(sampleData()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	// image-resizer has no forecast inputs; its forecast cell is "-".
	if !strings.Contains(buf.String(), "-") {
		t.Error("missing metric not rendered as dash")
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONReporter{Writer: &buf}

	if err := r.Generate(sampleData()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `"$schema": "spectre/v1"`) {
		t.Error("missing spectre/v1 schema")
	}
	if !strings.Contains(output, `"RIGHT_SIZING_CANDIDATE"`) {
		t.Error("missing right-sizing finding")
	}
	if !strings.Contains(output, `"forecasted_cost": null`) {
		t.Error("missing forecast not serialized as null")
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
}

func TestSARIFReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &SARIFReporter{Writer: &buf}

	if err := r.Generate(sampleData()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var parsed sarifReport
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid SARIF JSON: %v", err)
	}
	if parsed.Version != "2.1.0" {
		t.Errorf("version = %q, want 2.1.0", parsed.Version)
	}
	if len(parsed.Runs) != 1 {
		t.Fatalf("runs len = %d, want 1", len(parsed.Runs))
	}
	if got := len(parsed.Runs[0].Results); got != 2 {
		t.Errorf("results len = %d, want 2", got)
	}
	if got := len(parsed.Runs[0].Tool.Driver.Rules); got != 4 {
		t.Errorf("rules len = %d, want 4", got)
	}
	if parsed.Runs[0].Results[1].Level != "error" {
		t.Errorf("high severity level = %q, want error", parsed.Runs[0].Results[1].Level)
	}
}

func TestCSVReporter(t *testing.T) {
	dir := t.TempDir()
	r := &CSVReporter{Dir: dir}

	if err := r.Generate(sampleData()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, name := range []string{
		"cost_concentration.csv",
		"right_sizing.csv",
		"provisioned_concurrency.csv",
		"low_value.csv",
		"forecast.csv",
		"containerization.csv",
		"findings.csv",
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.Contains(string(data), "FunctionName") && !strings.Contains(string(data), "ID") {
			t.Errorf("%s missing header row", name)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "right_sizing.csv"))
	if err != nil {
		t.Fatalf("read right_sizing.csv: %v", err)
	}
	if !strings.Contains(string(data), "checkout-api") {
		t.Error("right_sizing.csv missing checkout-api row")
	}
	if !strings.Contains(string(data), "123.15") {
		t.Error("right_sizing.csv missing estimated savings")
	}
}

func TestTextReporterNoFindings(t *testing.T) {
	data := sampleData()
	data.Findings = nil
	data.Views = analyzer.Views{}
	data.Summary.TotalFindings = 0

	var buf bytes.Buffer
	r := &TextReporter{Writer: &buf}
	if err := r.Generate(data); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(buf.String(), "(none)") {
		t.Error("empty views not rendered with placeholder")
	}
}
