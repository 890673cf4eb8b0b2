package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/ppiankov/faasspectre/internal/dataset"
)

// Generate writes human-readable terminal output: the six views, the
// advisory findings, and the summary.
func (r *TextReporter) Generate(data Data) error {
	w := &errWriter{w: r.Writer}

	w.println("faasspectre — Serverless Cost Report")
	w.println(strings.Repeat("=", 36))
	w.println("")
	w.printf("Analyzed %d functions, total monthly cost $%s (model forecast $%s)\n",
		data.Summary.TotalFunctions,
		humanize.CommafWithDigits(data.Summary.TotalMonthlyCost, 2),
		humanize.CommafWithDigits(data.Summary.TotalForecastedCost, 2))
	if data.Source.Repaired {
		w.println("Note: input arrived as a single column and was repaired by comma re-split")
	}
	w.println("")

	r.writeCostConcentration(w, data)
	r.writeRightSizing(w, data)
	r.writeProvisionedConcurrency(w, data)
	r.writeLowValue(w, data)
	r.writeForecast(w, data)
	r.writeContainerization(w, data)
	r.writeFindings(w, data)
	writeTextSummary(w, data)

	return w.err
}

func (r *TextReporter) writeCostConcentration(w *errWriter, data Data) {
	w.println("1. Cost concentration — functions making up 80% of spend")
	if len(data.Views.CostConcentration) == 0 {
		w.println("   (none)")
		w.println("")
		return
	}
	tw := r.table(w)
	tw.printf("FUNCTION\tENV\tCOST\tCOST%%\tCUMULATIVE%%\n")
	for _, row := range data.Views.CostConcentration {
		tw.printf("%s\t%s\t%s\t%s\t%s\n",
			row.FunctionName, row.Environment,
			money(row.CostUSD), percent(row.CostPercent), percent(row.CumulativeCost))
	}
	tw.flush(w)
}

func (r *TextReporter) writeRightSizing(w *errWriter, data Data) {
	w.println("2. Memory right-sizing — fast functions with oversized allocations")
	if len(data.Views.RightSizing) == 0 {
		w.println("   (none)")
		w.println("")
		return
	}
	tw := r.table(w)
	tw.printf("FUNCTION\tMEMORY_MB\tDURATION_MS\tCOST\tEST_SAVINGS\n")
	for _, row := range data.Views.RightSizing {
		tw.printf("%s\t%s\t%s\t%s\t%s\n",
			row.FunctionName, plain(row.MemoryMB), plain(row.AvgDurationMs),
			money(row.CostUSD), money(row.EstimatedSavings))
	}
	tw.flush(w)
}

func (r *TextReporter) writeProvisionedConcurrency(w *errWriter, data Data) {
	w.println("3. Provisioned concurrency advice")
	if len(data.Views.ProvisionedConcurrency) == 0 {
		w.println("   (none)")
		w.println("")
		return
	}
	tw := r.table(w)
	tw.printf("FUNCTION\tPC\tCOLD_START%%\tCOST\tADVICE\n")
	for _, row := range data.Views.ProvisionedConcurrency {
		tw.printf("%s\t%s\t%s\t%s\t%s\n",
			row.FunctionName, plain(row.ProvisionedConcurrency), percent(row.ColdStartRate),
			money(row.CostUSD), row.Recommendation)
	}
	tw.flush(w)
}

func (r *TextReporter) writeLowValue(w *errWriter, data Data) {
	w.println("4. Low-value workloads — rarely invoked, above-average cost")
	if len(data.Views.LowValue) == 0 {
		w.println("   (none)")
		w.println("")
		return
	}
	tw := r.table(w)
	tw.printf("FUNCTION\tENV\tINVOCATIONS/MO\tCOST\n")
	for _, row := range data.Views.LowValue {
		tw.printf("%s\t%s\t%s\t%s\n",
			row.FunctionName, row.Environment, count(row.InvocationsPerMonth), money(row.CostUSD))
	}
	tw.flush(w)
}

func (r *TextReporter) writeForecast(w *errWriter, data Data) {
	w.println("5. Cost forecast — actual vs modeled monthly cost")
	if len(data.Views.Forecast) == 0 {
		w.println("   (none)")
		w.println("")
		return
	}
	tw := r.table(w)
	tw.printf("FUNCTION\tCOST\tFORECAST\n")
	for _, row := range data.Views.Forecast {
		tw.printf("%s\t%s\t%s\n",
			row.FunctionName, money(row.CostUSD), money(row.ForecastedCost))
	}
	tw.flush(w)
}

func (r *TextReporter) writeContainerization(w *errWriter, data Data) {
	w.println("6. Containerization candidates — better suited to ECS/EKS/Fargate")
	if len(data.Views.Containerization) == 0 {
		w.println("   (none)")
		w.println("")
		return
	}
	tw := r.table(w)
	tw.printf("FUNCTION\tDURATION_MS\tMEMORY_MB\tCOST\n")
	for _, row := range data.Views.Containerization {
		tw.printf("%s\t%s\t%s\t%s\n",
			row.FunctionName, plain(row.AvgDurationMs), plain(row.MemoryMB), money(row.CostUSD))
	}
	tw.flush(w)
}

func (r *TextReporter) writeFindings(w *errWriter, data Data) {
	if len(data.Findings) == 0 {
		return
	}
	w.printf("Advisories — %d findings, estimated $%s/month recoverable\n",
		data.Summary.TotalFindings,
		humanize.CommafWithDigits(data.Summary.TotalEstimatedSavings, 2))
	tw := r.table(w)
	tw.printf("SEVERITY\tTYPE\tFUNCTION\tENV\tSAVINGS/MO\tMESSAGE\n")
	for _, f := range data.Findings {
		tw.printf("%s\t%s\t%s\t%s\t$%.2f\t%s\n",
			f.Severity, f.ID, f.FunctionName, f.Environment, f.EstimatedMonthlySavings, f.Message)
	}
	tw.flush(w)
}

func writeTextSummary(w *errWriter, data Data) {
	w.println("Summary")
	w.println("-------")
	w.printf("Functions analyzed:      %d\n", data.Summary.TotalFunctions)
	w.printf("Total monthly cost:      $%s\n", humanize.CommafWithDigits(data.Summary.TotalMonthlyCost, 2))
	w.printf("Total forecasted cost:   $%s\n", humanize.CommafWithDigits(data.Summary.TotalForecastedCost, 2))
	w.printf("Total findings:          %d\n", data.Summary.TotalFindings)
	w.printf("Estimated savings:       $%s\n", humanize.CommafWithDigits(data.Summary.TotalEstimatedSavings, 2))

	if len(data.Summary.BySeverity) > 0 {
		w.printf("By severity:             %s\n", strings.Join(formatCountsSorted(data.Summary.BySeverity), ", "))
	}
	if len(data.Summary.ByFinding) > 0 {
		w.printf("By finding:              %s\n", strings.Join(formatCountsSorted(data.Summary.ByFinding), ", "))
	}
	if len(data.Summary.CostByEnvironment) > 0 {
		w.printf("Cost by environment:     %s\n", strings.Join(formatCostsSorted(data.Summary.CostByEnvironment), ", "))
	}

	if len(data.Warnings) > 0 {
		w.printf("\nWarnings (%d):\n", len(data.Warnings))
		for _, warning := range data.Warnings {
			w.printf("  - %s\n", warning)
		}
	}
}

// tableWriter pairs a tabwriter with error capture.
type tableWriter struct {
	tw *tabwriter.Writer
	ew *errWriter
}

func (r *TextReporter) table(w *errWriter) *tableWriter {
	tw := tabwriter.NewWriter(r.Writer, 0, 4, 2, ' ', 0)
	return &tableWriter{tw: tw, ew: &errWriter{w: tw, err: w.err}}
}

func (t *tableWriter) printf(format string, args ...any) {
	t.ew.printf(format, args...)
}

func (t *tableWriter) flush(w *errWriter) {
	if w.err == nil {
		w.err = t.ew.err
	}
	if err := t.tw.Flush(); err != nil && w.err == nil {
		w.err = err
	}
	w.println("")
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

// Metric renderers for the text surface. Missing is "-".

func money(m dataset.Metric) string {
	if !m.Valid {
		return "-"
	}
	return "$" + humanize.CommafWithDigits(m.Value, 2)
}

func percent(m dataset.Metric) string {
	if !m.Valid {
		return "-"
	}
	return fmt.Sprintf("%.1f", m.Value)
}

func count(m dataset.Metric) string {
	if !m.Valid {
		return "-"
	}
	return humanize.Comma(int64(m.Value))
}

func plain(m dataset.Metric) string {
	if !m.Valid {
		return "-"
	}
	return m.Format()
}

func formatCountsSorted(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return parts
}

func formatCostsSorted(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		name := k
		if name == "" {
			name = "(none)"
		}
		parts = append(parts, fmt.Sprintf("%s=$%.2f", name, m[k]))
	}
	return parts
}
