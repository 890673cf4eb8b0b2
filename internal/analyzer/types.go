package analyzer

import (
	"github.com/ppiankov/faasspectre/internal/dataset"
)

// Severity levels for advisory findings.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// FindingID identifies the type of advisory detected.
type FindingID string

const (
	FindingRightSizing      FindingID = "RIGHT_SIZING_CANDIDATE"
	FindingReducePC         FindingID = "REDUCE_PROVISIONED_CONCURRENCY"
	FindingLowValueWorkload FindingID = "LOW_VALUE_WORKLOAD"
	FindingContainerization FindingID = "CONTAINERIZATION_CANDIDATE"
)

// Finding is a single cost advisory derived from the views.
type Finding struct {
	ID                      FindingID      `json:"id"`
	Severity                Severity       `json:"severity"`
	FunctionName            string         `json:"function_name"`
	Environment             string         `json:"environment,omitempty"`
	Message                 string         `json:"message"`
	EstimatedMonthlySavings float64        `json:"estimated_monthly_savings"`
	Metadata                map[string]any `json:"metadata,omitempty"`
}

// Provisioned concurrency advice labels.
const (
	AdviceReducePC = "reduce/remove"
	AdviceKeepPC   = "keep"
)

// CostRow is a cost-concentration row: the source record plus its share
// of total spend and the running cumulative share.
type CostRow struct {
	dataset.FunctionRecord
	CostPercent    dataset.Metric `json:"cost_percent"`
	CumulativeCost dataset.Metric `json:"cumulative_cost"`
}

// RightSizingRow annotates an over-provisioned function with the
// estimated saving from a memory reduction.
type RightSizingRow struct {
	dataset.FunctionRecord
	EstimatedSavings dataset.Metric `json:"estimated_savings"`
}

// ConcurrencyRow annotates a provisioned-concurrency user with advice.
type ConcurrencyRow struct {
	dataset.FunctionRecord
	Recommendation string `json:"recommendation"`
}

// ForecastRow annotates a record with its modeled monthly cost.
type ForecastRow struct {
	dataset.FunctionRecord
	ForecastedCost dataset.Metric `json:"forecasted_cost"`
}

// Views holds the six analytical views. Each is an independent pure
// function of the loaded table; none mutates the source.
type Views struct {
	CostConcentration      []CostRow                `json:"cost_concentration"`
	RightSizing            []RightSizingRow         `json:"right_sizing"`
	ProvisionedConcurrency []ConcurrencyRow         `json:"provisioned_concurrency"`
	LowValue               []dataset.FunctionRecord `json:"low_value"`
	Forecast               []ForecastRow            `json:"forecast"`
	Containerization       []dataset.FunctionRecord `json:"containerization"`
}

// Summary holds aggregated statistics about the analysis.
type Summary struct {
	TotalFunctions          int                `json:"total_functions"`
	TotalMonthlyCost        float64            `json:"total_monthly_cost"`
	TotalForecastedCost     float64            `json:"total_forecasted_cost"`
	TotalFindings           int                `json:"total_findings"`
	TotalEstimatedSavings   float64            `json:"total_estimated_savings"`
	BySeverity              map[string]int     `json:"by_severity"`
	ByFinding               map[string]int     `json:"by_finding"`
	CostByEnvironment       map[string]float64 `json:"cost_by_environment"`
	InputRepaired           bool               `json:"input_repaired"`
}

// AnalysisResult holds the six views, the advisory findings derived
// from them, and the summary.
type AnalysisResult struct {
	Views    Views     `json:"views"`
	Findings []Finding `json:"findings"`
	Summary  Summary   `json:"summary"`
}

// Config controls analysis behavior. The view thresholds themselves are
// fixed constants and deliberately not configurable.
type Config struct {
	MinMonthlySavings float64
}
