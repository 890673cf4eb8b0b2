package analyzer

import (
	"testing"

	"github.com/ppiankov/faasspectre/internal/dataset"
)

func analysisTable() *dataset.Table {
	return &dataset.Table{Records: []dataset.FunctionRecord{
		record("fast-fat", func(r *dataset.FunctionRecord) {
			r.AvgDurationMs = dataset.Number(500)
			r.MemoryMB = dataset.Number(2048)
			r.CostUSD = dataset.Number(100)
			r.InvocationsPerMonth = dataset.Number(500000)
			r.DataTransferGB = dataset.Number(10)
		}),
		record("warm-and-cold", func(r *dataset.FunctionRecord) {
			r.ProvisionedConcurrency = dataset.Number(5)
			r.ColdStartRate = dataset.Number(5)
			r.CostUSD = dataset.Number(40)
			r.InvocationsPerMonth = dataset.Number(400000)
			r.AvgDurationMs = dataset.Number(900)
			r.MemoryMB = dataset.Number(512)
			r.DataTransferGB = dataset.Number(2)
		}),
		record("rare-expensive", func(r *dataset.FunctionRecord) {
			r.InvocationsPerMonth = dataset.Number(1000)
			r.CostUSD = dataset.Number(90)
			r.AvgDurationMs = dataset.Number(5200)
			r.MemoryMB = dataset.Number(3008)
			r.DataTransferGB = dataset.Number(1)
		}),
	}}
}

func TestAnalyzeProducesFindings(t *testing.T) {
	analysis := Analyze(analysisTable(), Config{})

	if got := analysis.Summary.TotalFunctions; got != 3 {
		t.Errorf("TotalFunctions = %d, want 3", got)
	}
	if got := analysis.Summary.TotalMonthlyCost; got != 230 {
		t.Errorf("TotalMonthlyCost = %v, want 230", got)
	}

	byID := make(map[FindingID]int)
	for _, f := range analysis.Findings {
		byID[f.ID]++
	}
	if byID[FindingRightSizing] != 1 {
		t.Errorf("right-sizing findings = %d, want 1", byID[FindingRightSizing])
	}
	if byID[FindingReducePC] != 1 {
		t.Errorf("reduce-PC findings = %d, want 1", byID[FindingReducePC])
	}
	if byID[FindingLowValueWorkload] != 1 {
		t.Errorf("low-value findings = %d, want 1", byID[FindingLowValueWorkload])
	}
	if byID[FindingContainerization] != 1 {
		t.Errorf("containerization findings = %d, want 1", byID[FindingContainerization])
	}

	if analysis.Summary.ByFinding[string(FindingRightSizing)] != 1 {
		t.Errorf("ByFinding[%s] = %d, want 1", FindingRightSizing, analysis.Summary.ByFinding[string(FindingRightSizing)])
	}
	if analysis.Summary.BySeverity["high"] != 2 {
		t.Errorf("BySeverity[high] = %d, want 2", analysis.Summary.BySeverity["high"])
	}
}

func TestAnalyzeMinSavingsFiltersFindings(t *testing.T) {
	analysis := Analyze(analysisTable(), Config{MinMonthlySavings: 50})

	// Only the low-value workload ($90 recoverable) clears the bar;
	// zero-savings advisories and the $30 right-sizing drop.
	if len(analysis.Findings) != 1 {
		t.Fatalf("findings len = %d, want 1", len(analysis.Findings))
	}
	if analysis.Findings[0].ID != FindingLowValueWorkload {
		t.Errorf("surviving finding = %s, want %s", analysis.Findings[0].ID, FindingLowValueWorkload)
	}

	// The views are never filtered.
	if len(analysis.Views.RightSizing) != 1 {
		t.Errorf("RightSizing view len = %d, want 1", len(analysis.Views.RightSizing))
	}
	if len(analysis.Views.ProvisionedConcurrency) != 1 {
		t.Errorf("ProvisionedConcurrency view len = %d, want 1", len(analysis.Views.ProvisionedConcurrency))
	}
}

func TestAnalyzeSummaryAggregates(t *testing.T) {
	analysis := Analyze(analysisTable(), Config{})

	if got := analysis.Summary.CostByEnvironment["prod"]; got != 230 {
		t.Errorf("CostByEnvironment[prod] = %v, want 230", got)
	}
	wantSavings := 30.0 + 90.0 // right-sizing + low-value
	if got := analysis.Summary.TotalEstimatedSavings; got != wantSavings {
		t.Errorf("TotalEstimatedSavings = %v, want %v", got, wantSavings)
	}
	if analysis.Summary.TotalForecastedCost <= 0 {
		t.Errorf("TotalForecastedCost = %v, want > 0", analysis.Summary.TotalForecastedCost)
	}
	if analysis.Summary.InputRepaired {
		t.Error("InputRepaired = true for a clean table")
	}
}

func TestAnalyzeEmptyTable(t *testing.T) {
	analysis := Analyze(&dataset.Table{}, Config{})

	if analysis.Summary.TotalFunctions != 0 {
		t.Errorf("TotalFunctions = %d, want 0", analysis.Summary.TotalFunctions)
	}
	if len(analysis.Findings) != 0 {
		t.Errorf("findings len = %d, want 0", len(analysis.Findings))
	}
	if len(analysis.Views.CostConcentration) != 0 {
		t.Errorf("CostConcentration len = %d, want 0", len(analysis.Views.CostConcentration))
	}
}

func TestAnalyzeCarriesRepairFlag(t *testing.T) {
	table := analysisTable()
	table.Repaired = true
	analysis := Analyze(table, Config{})
	if !analysis.Summary.InputRepaired {
		t.Error("InputRepaired = false, want true")
	}
}
