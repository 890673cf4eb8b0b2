package analyzer

import (
	"fmt"

	"github.com/ppiankov/faasspectre/internal/dataset"
)

// Analyze runs the six views over the loaded table, derives advisory
// findings from the four filter views, and computes summary statistics.
// Findings below cfg.MinMonthlySavings are dropped; the views
// themselves are never filtered.
func Analyze(t *dataset.Table, cfg Config) *AnalysisResult {
	views := Views{
		CostConcentration:      CostConcentration(t),
		RightSizing:            RightSizing(t),
		ProvisionedConcurrency: ProvisionedConcurrency(t),
		LowValue:               LowValue(t),
		Forecast:               Forecast(t),
		Containerization:       Containerization(t),
	}

	var findings []Finding
	for _, f := range deriveFindings(views) {
		if f.EstimatedMonthlySavings >= cfg.MinMonthlySavings {
			findings = append(findings, f)
		}
	}

	summary := Summary{
		TotalFunctions:    len(t.Records),
		TotalFindings:     len(findings),
		BySeverity:        make(map[string]int),
		ByFinding:         make(map[string]int),
		CostByEnvironment: make(map[string]float64),
		InputRepaired:     t.Repaired,
	}
	for _, r := range t.Records {
		if r.CostUSD.Valid {
			summary.TotalMonthlyCost += r.CostUSD.Value
			summary.CostByEnvironment[r.Environment] += r.CostUSD.Value
		}
	}
	for _, row := range views.Forecast {
		if row.ForecastedCost.Valid {
			summary.TotalForecastedCost += row.ForecastedCost.Value
		}
	}
	for _, f := range findings {
		summary.TotalEstimatedSavings += f.EstimatedMonthlySavings
		summary.BySeverity[string(f.Severity)]++
		summary.ByFinding[string(f.ID)]++
	}

	return &AnalysisResult{
		Views:    views,
		Findings: findings,
		Summary:  summary,
	}
}

func deriveFindings(views Views) []Finding {
	var findings []Finding

	for _, row := range views.RightSizing {
		savings := 0.0
		if row.EstimatedSavings.Valid {
			savings = row.EstimatedSavings.Value
		}
		findings = append(findings, Finding{
			ID:           FindingRightSizing,
			Severity:     SeverityMedium,
			FunctionName: row.FunctionName,
			Environment:  row.Environment,
			Message: fmt.Sprintf("Runs in %sms with %sMB allocated; memory reduction candidate",
				row.AvgDurationMs.Format(), row.MemoryMB.Format()),
			EstimatedMonthlySavings: savings,
			Metadata: map[string]any{
				"avg_duration_ms": row.AvgDurationMs,
				"memory_mb":       row.MemoryMB,
			},
		})
	}

	for _, row := range views.ProvisionedConcurrency {
		if row.Recommendation != AdviceReducePC {
			continue
		}
		findings = append(findings, Finding{
			ID:           FindingReducePC,
			Severity:     SeverityHigh,
			FunctionName: row.FunctionName,
			Environment:  row.Environment,
			Message: fmt.Sprintf("Cold start rate %s%% does not justify %s provisioned environments",
				row.ColdStartRate.Format(), row.ProvisionedConcurrency.Format()),
			Metadata: map[string]any{
				"cold_start_rate":         row.ColdStartRate,
				"provisioned_concurrency": row.ProvisionedConcurrency,
			},
		})
	}

	for _, r := range views.LowValue {
		savings := 0.0
		if r.CostUSD.Valid {
			savings = r.CostUSD.Value
		}
		findings = append(findings, Finding{
			ID:           FindingLowValueWorkload,
			Severity:     SeverityHigh,
			FunctionName: r.FunctionName,
			Environment:  r.Environment,
			Message: fmt.Sprintf("Above-average cost ($%s) for %s invocations/month",
				r.CostUSD.Format(), r.InvocationsPerMonth.Format()),
			EstimatedMonthlySavings: savings,
			Metadata: map[string]any{
				"invocations_per_month": r.InvocationsPerMonth,
			},
		})
	}

	for _, r := range views.Containerization {
		findings = append(findings, Finding{
			ID:           FindingContainerization,
			Severity:     SeverityLow,
			FunctionName: r.FunctionName,
			Environment:  r.Environment,
			Message: fmt.Sprintf("Long-running (%sms) with %sMB allocated; consider ECS/EKS/Fargate",
				r.AvgDurationMs.Format(), r.MemoryMB.Format()),
			Metadata: map[string]any{
				"avg_duration_ms": r.AvgDurationMs,
				"memory_mb":       r.MemoryMB,
			},
		})
	}

	return findings
}
