package report

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ppiankov/faasspectre/internal/analyzer"
	"github.com/ppiankov/faasspectre/internal/dataset"
)

// Generate exports each view and the advisory findings as CSV files
// under Dir.
func (r *CSVReporter) Generate(data Data) error {
	exports := []struct {
		name    string
		header  []string
		records [][]string
	}{
		{"cost_concentration.csv", appendHeader("CostPercent", "CumulativeCost"), costRows(data.Views.CostConcentration)},
		{"right_sizing.csv", appendHeader("EstimatedSavings"), rightSizingRows(data.Views.RightSizing)},
		{"provisioned_concurrency.csv", appendHeader("Recommendation"), concurrencyRows(data.Views.ProvisionedConcurrency)},
		{"low_value.csv", appendHeader(), recordRows(data.Views.LowValue)},
		{"forecast.csv", appendHeader("ForecastedCost"), forecastRows(data.Views.Forecast)},
		{"containerization.csv", appendHeader(), recordRows(data.Views.Containerization)},
		{"findings.csv", findingsHeader, findingRows(data.Findings)},
	}

	for _, e := range exports {
		path := filepath.Join(r.Dir, e.name)
		if err := dataset.WriteFile(path, e.header, e.records); err != nil {
			return fmt.Errorf("export %s: %w", e.name, err)
		}
	}
	return nil
}

var findingsHeader = []string{"ID", "Severity", "FunctionName", "Environment", "EstimatedMonthlySavings", "Message"}

func appendHeader(extra ...string) []string {
	header := make([]string, 0, len(dataset.Columns)+len(extra))
	header = append(header, dataset.Columns...)
	return append(header, extra...)
}

func recordRows(records []dataset.FunctionRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Fields())
	}
	return rows
}

func costRows(view []analyzer.CostRow) [][]string {
	rows := make([][]string, 0, len(view))
	for _, r := range view {
		rows = append(rows, append(r.Fields(), r.CostPercent.Format(), r.CumulativeCost.Format()))
	}
	return rows
}

func rightSizingRows(view []analyzer.RightSizingRow) [][]string {
	rows := make([][]string, 0, len(view))
	for _, r := range view {
		rows = append(rows, append(r.Fields(), r.EstimatedSavings.Format()))
	}
	return rows
}

func concurrencyRows(view []analyzer.ConcurrencyRow) [][]string {
	rows := make([][]string, 0, len(view))
	for _, r := range view {
		rows = append(rows, append(r.Fields(), r.Recommendation))
	}
	return rows
}

func forecastRows(view []analyzer.ForecastRow) [][]string {
	rows := make([][]string, 0, len(view))
	for _, r := range view {
		rows = append(rows, append(r.Fields(), r.ForecastedCost.Format()))
	}
	return rows
}

func findingRows(findings []analyzer.Finding) [][]string {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{
			string(f.ID),
			string(f.Severity),
			f.FunctionName,
			f.Environment,
			strconv.FormatFloat(f.EstimatedMonthlySavings, 'f', -1, 64),
			f.Message,
		})
	}
	return rows
}
