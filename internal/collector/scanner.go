package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/ppiankov/faasspectre/internal/dataset"
	"github.com/ppiankov/faasspectre/internal/pricing"
)

const metricWindowDays = 30

// Progress reports scanning progress to callers.
type Progress struct {
	FunctionName string
	Scanned      int
	Total        int
}

// Result holds the collected metrics table plus per-function warnings
// for metrics that could not be retrieved.
type Result struct {
	Table    *dataset.Table
	Warnings []string
}

// Scanner builds a function metrics table from live AWS Lambda and
// CloudWatch data.
type Scanner struct {
	lambda LambdaAPI
	cw     CloudWatchAPI
	region string
	now    time.Time // injectable for testing
}

// NewScanner creates a scanner for the given service clients and region.
func NewScanner(lambdaClient LambdaAPI, cwClient CloudWatchAPI, region string) *Scanner {
	return &Scanner{
		lambda: lambdaClient,
		cw:     cwClient,
		region: region,
		now:    time.Now(),
	}
}

// Scan lists every function in the region and gathers its invocation
// and duration metrics over the last 30 days. Per-function metric
// failures become warnings; the scan continues.
//
// ColdStartRate and DataTransferGB have no standard CloudWatch source
// and are left missing rather than estimated.
func (s *Scanner) Scan(ctx context.Context, progress func(Progress)) (*Result, error) {
	functions, err := s.listFunctions(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("Listed Lambda functions", "region", s.region, "count", len(functions))

	result := &Result{Table: &dataset.Table{}}
	for i, fn := range functions {
		if progress != nil {
			progress(Progress{FunctionName: deref(fn.FunctionName), Scanned: i + 1, Total: len(functions)})
		}

		record, warnings := s.collectFunction(ctx, fn)
		result.Table.Records = append(result.Table.Records, record)
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result, nil
}

func (s *Scanner) listFunctions(ctx context.Context) ([]lambdatypes.FunctionConfiguration, error) {
	var functions []lambdatypes.FunctionConfiguration
	input := &lambda.ListFunctionsInput{}

	for {
		out, err := s.lambda.ListFunctions(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("list functions: %w", err)
		}
		functions = append(functions, out.Functions...)
		if out.NextMarker == nil || *out.NextMarker == "" {
			break
		}
		input.Marker = out.NextMarker
	}
	return functions, nil
}

func (s *Scanner) collectFunction(ctx context.Context, fn lambdatypes.FunctionConfiguration) (dataset.FunctionRecord, []string) {
	name := deref(fn.FunctionName)
	record := dataset.FunctionRecord{FunctionName: name}
	var warnings []string

	if fn.MemorySize != nil {
		record.MemoryMB = dataset.Number(float64(*fn.MemorySize))
	}

	if env, err := s.functionEnvironment(ctx, fn); err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: tags: %v", name, err))
	} else {
		record.Environment = env
	}

	if pc, err := s.provisionedConcurrency(ctx, name); err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: provisioned concurrency: %v", name, err))
	} else {
		record.ProvisionedConcurrency = dataset.Number(float64(pc))
	}

	invocations, err := s.metricSum(ctx, name, "Invocations")
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: invocations: %v", name, err))
	} else {
		record.InvocationsPerMonth = dataset.Number(invocations)
	}

	duration, ok, err := s.metricAverage(ctx, name, "Duration")
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: duration: %v", name, err))
	} else if ok {
		record.AvgDurationMs = dataset.Number(duration)
	}

	if record.InvocationsPerMonth.Valid && record.AvgDurationMs.Valid && record.MemoryMB.Valid {
		record.GBSeconds = dataset.Number(pricing.GBSeconds(
			record.InvocationsPerMonth.Value,
			record.AvgDurationMs.Value,
			record.MemoryMB.Value,
		))
		record.CostUSD = dataset.Number(pricing.LambdaMonthlyCost(
			s.region,
			record.InvocationsPerMonth.Value,
			record.AvgDurationMs.Value,
			record.MemoryMB.Value,
		))
	}

	return record, warnings
}

// functionEnvironment reads the environment/env tag if present.
func (s *Scanner) functionEnvironment(ctx context.Context, fn lambdatypes.FunctionConfiguration) (string, error) {
	if fn.FunctionArn == nil {
		return "", nil
	}
	out, err := s.lambda.ListTags(ctx, &lambda.ListTagsInput{Resource: fn.FunctionArn})
	if err != nil {
		return "", err
	}
	for _, key := range []string{"environment", "Environment", "env", "Env"} {
		if v, ok := out.Tags[key]; ok {
			return v, nil
		}
	}
	return "", nil
}

func (s *Scanner) provisionedConcurrency(ctx context.Context, name string) (int32, error) {
	input := &lambda.ListProvisionedConcurrencyConfigsInput{
		FunctionName: aws.String(name),
	}

	var total int32
	for {
		out, err := s.lambda.ListProvisionedConcurrencyConfigs(ctx, input)
		if err != nil {
			return 0, err
		}
		for _, cfg := range out.ProvisionedConcurrencyConfigs {
			if cfg.RequestedProvisionedConcurrentExecutions != nil {
				total += *cfg.RequestedProvisionedConcurrentExecutions
			}
		}
		if out.NextMarker == nil || *out.NextMarker == "" {
			break
		}
		input.Marker = out.NextMarker
	}
	return total, nil
}

// metricSum totals daily Sum datapoints over the metric window.
func (s *Scanner) metricSum(ctx context.Context, functionName, metricName string) (float64, error) {
	out, err := s.cw.GetMetricStatistics(ctx, s.metricInput(functionName, metricName, 86400, cwtypes.StatisticSum))
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, dp := range out.Datapoints {
		if dp.Sum != nil {
			total += *dp.Sum
		}
	}
	return total, nil
}

// metricAverage reads a single window-wide Average datapoint. The
// second return reports whether a datapoint existed at all: a function
// with no invocations has no duration.
func (s *Scanner) metricAverage(ctx context.Context, functionName, metricName string) (float64, bool, error) {
	out, err := s.cw.GetMetricStatistics(ctx, s.metricInput(functionName, metricName, metricWindowDays*86400, cwtypes.StatisticAverage))
	if err != nil {
		return 0, false, err
	}

	if len(out.Datapoints) == 0 {
		return 0, false, nil
	}

	sum, count := 0.0, 0
	for _, dp := range out.Datapoints {
		if dp.Average != nil {
			sum += *dp.Average
			count++
		}
	}
	if count == 0 {
		return 0, false, nil
	}
	return sum / float64(count), true, nil
}

func (s *Scanner) metricInput(functionName, metricName string, periodSeconds int32, stat cwtypes.Statistic) *cloudwatch.GetMetricStatisticsInput {
	end := s.now
	start := end.AddDate(0, 0, -metricWindowDays)

	return &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/Lambda"),
		MetricName: aws.String(metricName),
		Dimensions: []cwtypes.Dimension{
			{Name: aws.String("FunctionName"), Value: aws.String(functionName)},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(periodSeconds),
		Statistics: []cwtypes.Statistic{stat},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
