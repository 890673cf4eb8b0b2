package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/ppiankov/faasspectre/internal/collector"
	"github.com/ppiankov/faasspectre/internal/config"
	"github.com/ppiankov/faasspectre/internal/dataset"
)

var collectFlags struct {
	region     string
	profile    string
	outputFile string
	noProgress bool
	timeout    time.Duration
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect Lambda metrics from AWS into a metrics CSV",
	Long: `Scan every Lambda function in the region and gather 30 days of CloudWatch
invocation and duration metrics, provisioned concurrency allocations, and an
estimated monthly cost. Writes the ten-column metrics CSV that analyze consumes.

ColdStartRate and DataTransferGB have no standard CloudWatch source and are
left empty.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringVar(&collectFlags.region, "region", "", "AWS region (default: from AWS config)")
	collectCmd.Flags().StringVar(&collectFlags.profile, "profile", "", "AWS profile name")
	collectCmd.Flags().StringVarP(&collectFlags.outputFile, "output", "o", "serverless_metrics.csv", "Output CSV path")
	collectCmd.Flags().BoolVar(&collectFlags.noProgress, "no-progress", false, "Disable progress output")
	collectCmd.Flags().DurationVar(&collectFlags.timeout, "timeout", 10*time.Minute, "Collection timeout")
}

func runCollect(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if collectFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, collectFlags.timeout)
		defer cancel()
	}

	cfg, err := config.Load(".")
	if err != nil {
		slog.Warn("Failed to load config file", "error", err)
	}

	profile := collectFlags.profile
	if profile == "" {
		profile = cfg.Profile
	}
	region := collectFlags.region
	if region == "" {
		region = cfg.Region
	}

	client, err := collector.NewClient(ctx, profile, region)
	if err != nil {
		return enhanceError("initialize AWS client", err)
	}

	resolvedRegion := client.Region()
	if resolvedRegion == "" {
		return fmt.Errorf("no AWS region configured; use --region or set AWS_REGION")
	}
	slog.Info("Collecting Lambda metrics", "region", resolvedRegion)

	scanner := collector.NewScanner(client.NewLambdaClient(), client.NewCloudWatchClient(), resolvedRegion)

	var progressFn func(collector.Progress)
	var sp *spinner.Spinner
	if !collectFlags.noProgress {
		sp = spinner.New(spinner.CharSets[9], 100*time.Millisecond)
		sp.Suffix = " Listing Lambda functions ..."
		sp.Start()
		defer sp.Stop()

		progressFn = func(p collector.Progress) {
			sp.Lock()
			sp.Suffix = fmt.Sprintf(" [%d/%d] Collecting: %s", p.Scanned, p.Total, p.FunctionName)
			sp.Unlock()
		}
	}

	result, err := scanner.Scan(ctx, progressFn)
	if err != nil {
		return enhanceError("collect Lambda metrics", err)
	}
	if sp != nil {
		sp.FinalMSG = fmt.Sprintf("Collected metrics for %d functions\n", len(result.Table.Records))
		sp.Stop()
	}

	for _, warning := range result.Warnings {
		slog.Warn("Metric collection incomplete", "detail", warning)
	}

	if err := dataset.WriteFile(collectFlags.outputFile, dataset.Columns, result.Table.Rows()); err != nil {
		return err
	}

	fmt.Printf("Wrote %d function records to %s\n", len(result.Table.Records), collectFlags.outputFile)
	return nil
}
