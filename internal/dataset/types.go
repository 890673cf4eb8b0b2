package dataset

import (
	"strconv"
	"strings"
)

// Column names in canonical order. The loader guarantees every table it
// produces carries exactly these ten columns.
var Columns = []string{
	"FunctionName",
	"Environment",
	"InvocationsPerMonth",
	"AvgDurationMs",
	"MemoryMB",
	"ColdStartRate",
	"ProvisionedConcurrency",
	"GBSeconds",
	"DataTransferGB",
	"CostUSD",
}

// NumericColumns lists the eight columns that coerce to numeric values.
var NumericColumns = []string{
	"InvocationsPerMonth",
	"AvgDurationMs",
	"MemoryMB",
	"ColdStartRate",
	"ProvisionedConcurrency",
	"GBSeconds",
	"DataTransferGB",
	"CostUSD",
}

// Metric is a nullable numeric value. The zero value is missing.
// Coercion failures become missing, never zero.
type Metric struct {
	Value float64
	Valid bool
}

// Number returns a valid Metric holding v.
func Number(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// ParseMetric coerces a raw cell to a Metric. Anything that does not
// parse as a float is missing.
func ParseMetric(s string) Metric {
	s = strings.TrimSpace(s)
	if s == "" {
		return Metric{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Metric{}
	}
	return Number(v)
}

// Format renders the metric for CSV output. Missing renders as the
// empty string, which ParseMetric maps back to missing.
func (m Metric) Format() string {
	if !m.Valid {
		return ""
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// MarshalJSON renders missing values as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(m.Value, 'f', -1, 64)), nil
}

// FunctionRecord is one row of the metrics table: a single serverless
// function deployment. FunctionName is an identifier but not guaranteed
// unique.
type FunctionRecord struct {
	FunctionName           string `json:"function_name"`
	Environment            string `json:"environment"`
	InvocationsPerMonth    Metric `json:"invocations_per_month"`
	AvgDurationMs          Metric `json:"avg_duration_ms"`
	MemoryMB               Metric `json:"memory_mb"`
	ColdStartRate          Metric `json:"cold_start_rate"`
	ProvisionedConcurrency Metric `json:"provisioned_concurrency"`
	GBSeconds              Metric `json:"gb_seconds"`
	DataTransferGB         Metric `json:"data_transfer_gb"`
	CostUSD                Metric `json:"cost_usd"`
}

// Fields renders the record as CSV cells in canonical column order.
func (r FunctionRecord) Fields() []string {
	return []string{
		r.FunctionName,
		r.Environment,
		r.InvocationsPerMonth.Format(),
		r.AvgDurationMs.Format(),
		r.MemoryMB.Format(),
		r.ColdStartRate.Format(),
		r.ProvisionedConcurrency.Format(),
		r.GBSeconds.Format(),
		r.DataTransferGB.Format(),
		r.CostUSD.Format(),
	}
}

// Table holds the loaded metrics table. It is immutable after load:
// analytical views copy rows and annotate the copies.
type Table struct {
	Records  []FunctionRecord
	Repaired bool // single-column input was re-split on commas
}

// Rows renders every record as CSV cells.
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.Records))
	for _, r := range t.Records {
		rows = append(rows, r.Fields())
	}
	return rows
}

func recordFromFields(fields []string) FunctionRecord {
	return FunctionRecord{
		FunctionName:           strings.TrimSpace(fields[0]),
		Environment:            strings.TrimSpace(fields[1]),
		InvocationsPerMonth:    ParseMetric(fields[2]),
		AvgDurationMs:          ParseMetric(fields[3]),
		MemoryMB:               ParseMetric(fields[4]),
		ColdStartRate:          ParseMetric(fields[5]),
		ProvisionedConcurrency: ParseMetric(fields[6]),
		GBSeconds:              ParseMetric(fields[7]),
		DataTransferGB:         ParseMetric(fields[8]),
		CostUSD:                ParseMetric(fields[9]),
	}
}
