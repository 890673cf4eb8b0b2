package analyzer

import (
	"sort"

	"github.com/ppiankov/faasspectre/internal/dataset"
	"github.com/ppiankov/faasspectre/internal/pricing"
)

// View thresholds. Fixed by the report contract; reproduced exactly so
// runs stay comparable.
const (
	concentrationCutoffPercent = 80.0
	rightSizingMaxDurationMs   = 600.0
	rightSizingMinMemoryMB     = 1024.0
	coldStartRateFloor         = 10.0
	lowValueInvocationShare    = 0.01
	containerMinDurationMs     = 3000.0
	containerMinMemoryMB       = 2048.0
)

// CostConcentration sorts the table by cost descending and returns the
// prefix of functions whose cumulative share of total spend stays
// within 80%. Rows with missing cost sort last and take no part in the
// percentage math. A zero or missing total leaves every share missing
// and the prefix empty; shares are never silently zero.
func CostConcentration(t *dataset.Table) []CostRow {
	rows := make([]CostRow, len(t.Records))
	for i, r := range t.Records {
		rows[i] = CostRow{FunctionRecord: r}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].CostUSD, rows[j].CostUSD
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Value > b.Value
	})

	total := 0.0
	for _, r := range rows {
		if r.CostUSD.Valid {
			total += r.CostUSD.Value
		}
	}

	cumulative := 0.0
	for i := range rows {
		if !rows[i].CostUSD.Valid || total <= 0 {
			continue
		}
		pct := rows[i].CostUSD.Value / total * 100
		cumulative += pct
		rows[i].CostPercent = dataset.Number(pct)
		rows[i].CumulativeCost = dataset.Number(cumulative)
	}

	var top []CostRow
	for _, r := range rows {
		if r.CumulativeCost.Valid && r.CumulativeCost.Value <= concentrationCutoffPercent {
			top = append(top, r)
		}
	}
	return top
}

// RightSizing selects fast, memory-heavy functions (duration under
// 600ms with more than 1024MB allocated) and estimates the saving from
// reducing memory at 30% of current cost.
func RightSizing(t *dataset.Table) []RightSizingRow {
	var rows []RightSizingRow
	for _, r := range t.Records {
		if !lessThan(r.AvgDurationMs, rightSizingMaxDurationMs) ||
			!greaterThan(r.MemoryMB, rightSizingMinMemoryMB) {
			continue
		}
		row := RightSizingRow{FunctionRecord: r}
		if r.CostUSD.Valid {
			row.EstimatedSavings = dataset.Number(r.CostUSD.Value * pricing.RightSizingSavingsRate)
		}
		rows = append(rows, row)
	}
	return rows
}

// ProvisionedConcurrency selects functions keeping warm capacity and
// advises dropping it when the cold start rate is under 10%. A missing
// cold start rate fails that comparison and falls through to "keep".
func ProvisionedConcurrency(t *dataset.Table) []ConcurrencyRow {
	var rows []ConcurrencyRow
	for _, r := range t.Records {
		if !greaterThan(r.ProvisionedConcurrency, 0) {
			continue
		}
		advice := AdviceKeepPC
		if lessThan(r.ColdStartRate, coldStartRateFloor) {
			advice = AdviceReducePC
		}
		rows = append(rows, ConcurrencyRow{FunctionRecord: r, Recommendation: advice})
	}
	return rows
}

// LowValue selects functions invoked less than 1% of total monthly
// invocations yet costing more than the mean. A zero or missing
// invocation total makes the threshold undefined and the result empty.
func LowValue(t *dataset.Table) []dataset.FunctionRecord {
	totalInvocations := 0.0
	costSum, costCount := 0.0, 0
	for _, r := range t.Records {
		if r.InvocationsPerMonth.Valid {
			totalInvocations += r.InvocationsPerMonth.Value
		}
		if r.CostUSD.Valid {
			costSum += r.CostUSD.Value
			costCount++
		}
	}
	if totalInvocations <= 0 || costCount == 0 {
		return nil
	}
	threshold := totalInvocations * lowValueInvocationShare
	meanCost := costSum / float64(costCount)

	var rows []dataset.FunctionRecord
	for _, r := range t.Records {
		if lessThan(r.InvocationsPerMonth, threshold) && greaterThan(r.CostUSD, meanCost) {
			rows = append(rows, r)
		}
	}
	return rows
}

// Forecast applies the linear cost model to every row. A missing input
// leaves the forecast missing.
func Forecast(t *dataset.Table) []ForecastRow {
	rows := make([]ForecastRow, len(t.Records))
	for i, r := range t.Records {
		rows[i] = ForecastRow{FunctionRecord: r}
		if r.InvocationsPerMonth.Valid && r.AvgDurationMs.Valid &&
			r.MemoryMB.Valid && r.DataTransferGB.Valid {
			rows[i].ForecastedCost = dataset.Number(pricing.ForecastCost(
				r.InvocationsPerMonth.Value,
				r.AvgDurationMs.Value,
				r.MemoryMB.Value,
				r.DataTransferGB.Value,
			))
		}
	}
	return rows
}

// Containerization selects long-running, memory-heavy functions
// (duration over 3000ms and more than 2048MB) better suited to
// containers than per-invocation billing.
func Containerization(t *dataset.Table) []dataset.FunctionRecord {
	var rows []dataset.FunctionRecord
	for _, r := range t.Records {
		if greaterThan(r.AvgDurationMs, containerMinDurationMs) &&
			greaterThan(r.MemoryMB, containerMinMemoryMB) {
			rows = append(rows, r)
		}
	}
	return rows
}

// Nullable comparisons: a missing operand excludes the row.

func lessThan(m dataset.Metric, v float64) bool {
	return m.Valid && m.Value < v
}

func greaterThan(m dataset.Metric, v float64) bool {
	return m.Valid && m.Value > v
}
